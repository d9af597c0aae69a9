package api

import (
	"errors"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/db"
	"github.com/dale-waterworth/HealthyMe/internal/services"
	"github.com/gofiber/fiber/v2"
)

type logIntakeRequest struct {
	Amount int `json:"amount"`
}

// GetToday returns the derived view the tracker screen renders: progress,
// today's events and the drinking schedule. The UI re-queries this after
// every write it performs.
func (handler *Handler) GetToday(c *fiber.Ctx) error {
	profile, ok, err := handler.currentProfile(c)
	if err != nil || !ok {
		return err
	}

	now := time.Now().In(handler.location)
	total, err := handler.intakeService.TodayTotal(profile.ID, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load today's intake")
	}

	events, err := handler.intakeService.Recent(profile.ID, now, recentIntakeLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load recent intakes")
	}

	config, found, err := handler.reminderService.Load(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminder settings")
	}
	var schedule []services.ScheduleEntry
	if found {
		schedule = services.BuildDrinkingSchedule(&config, profile.DailyWaterGoal, total, now)
	} else {
		schedule = services.BuildDrinkingSchedule(nil, profile.DailyWaterGoal, total, now)
	}

	return c.JSON(fiber.Map{
		"progress": services.BuildProgress(total, profile.DailyWaterGoal),
		"recent":   events,
		"schedule": schedule,
	})
}

func (handler *Handler) LogIntake(c *fiber.Ctx) error {
	profile, ok, err := handler.currentProfile(c)
	if err != nil || !ok {
		return err
	}

	var request logIntakeRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	now := time.Now().In(handler.location)
	event, progress, err := handler.intakeService.Log(profile, request.Amount, now)
	if err != nil {
		if errors.Is(err, services.ErrInvalidIntakeAmount) {
			return apiError(c, fiber.StatusBadRequest, "amount must be positive")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to log intake, please try again")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"event":    event,
		"progress": progress,
	})
}

func (handler *Handler) DeleteIntake(c *fiber.Ctx) error {
	if _, ok, err := handler.currentProfile(c); err != nil || !ok {
		return err
	}

	eventID, err := c.ParamsInt("id")
	if err != nil || eventID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid intake id")
	}

	if err := handler.intakeService.Delete(uint(eventID)); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "intake entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete intake, please try again")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
