package api

import (
	"errors"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/notify"
	"github.com/dale-waterworth/HealthyMe/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	profile, ok, err := handler.currentProfile(c)
	if err != nil || !ok {
		return err
	}

	config, found, err := handler.reminderService.Load(profile.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminder settings")
	}
	if !found {
		return c.JSON(fiber.Map{"configured": false})
	}

	return c.JSON(fiber.Map{
		"configured": true,
		"config":     config,
		"state":      handler.scheduler.State(profile.ID),
	})
}

// SaveReminders upserts the settings and starts or stops the schedule. A
// permission denial is not an error: the config stays disabled and the
// response says why.
func (handler *Handler) SaveReminders(c *fiber.Ctx) error {
	profile, ok, err := handler.currentProfile(c)
	if err != nil || !ok {
		return err
	}

	var settings services.ReminderSettings
	if err := c.BodyParser(&settings); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	now := time.Now().In(handler.location)
	result, err := handler.reminderService.Save(profile.ID, settings, now)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReminderSettings) {
			return apiError(c, fiber.StatusBadRequest, "invalid reminder settings")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save reminder settings, please try again")
	}

	response := fiber.Map{
		"config":  result.Config,
		"enabled": result.Enabled,
	}
	if result.PermissionDenied {
		response["reason"] = "permission_denied"
	}
	return c.JSON(response)
}

func (handler *Handler) TestNotification(c *fiber.Ctx) error {
	if handler.notifier.RequestPermission() != notify.PermissionGranted {
		return c.JSON(fiber.Map{"sent": false, "reason": "permission_denied"})
	}
	handler.notifier.Show("Test Notification", "This is a test notification to verify functionality", notify.Options{Tag: "test"})
	return c.JSON(fiber.Map{"sent": true})
}
