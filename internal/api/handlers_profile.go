package api

import (
	"errors"

	"github.com/dale-waterworth/HealthyMe/internal/models"
	"github.com/dale-waterworth/HealthyMe/internal/services"
	"github.com/gofiber/fiber/v2"
)

type calculateRequest struct {
	Name    string                    `json:"name"`
	Factors services.HydrationFactors `json:"factors"`
}

type calculateResponse struct {
	Result        services.HydrationResult `json:"result"`
	NHSValidation services.NHSValidation   `json:"nhsValidation"`
	Tips          []string                 `json:"tips"`
	Warnings      []string                 `json:"warnings"`
}

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	requiresSetup, err := handler.setupService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"requiresSetup": requiresSetup})
}

// Calculate runs the hydration calculator without persisting anything.
func (handler *Handler) Calculate(c *fiber.Ctx) error {
	var request calculateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.Factors.Age < 0 || request.Factors.WeightKg <= 0 || !models.IsValidActivityLevel(request.Factors.ActivityLevel) {
		return apiError(c, fiber.StatusBadRequest, "invalid hydration factors")
	}

	result := services.CalculateDailyWaterNeed(request.Factors)
	return c.JSON(calculateResponse{
		Result:        result,
		NHSValidation: services.ValidateAgainstNHSGuidelines(result.DailyWaterGoal),
		Tips:          services.PersonalizedTips(request.Factors),
		Warnings:      services.DehydrationWarnings(),
	})
}

// SaveProfile runs the calculator and persists the outcome on the current
// profile (creating it on first save).
func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	var request calculateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, result, err := handler.profileService.SaveCalculated(request.Name, request.Factors)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProfileInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid hydration factors")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile, please try again")
	}

	return c.JSON(fiber.Map{
		"profile":       profile,
		"result":        result,
		"nhsValidation": services.ValidateAgainstNHSGuidelines(result.DailyWaterGoal),
	})
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, ok, err := handler.currentProfile(c)
	if err != nil || !ok {
		return err
	}
	return c.JSON(profile)
}

// currentProfile resolves the single current profile at the API edge. When it
// is missing the response has already been written and ok is false.
func (handler *Handler) currentProfile(c *fiber.Ctx) (models.Profile, bool, error) {
	profile, found, err := handler.profileService.Current()
	if err != nil {
		return models.Profile{}, false, apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	if !found {
		return models.Profile{}, false, apiError(c, fiber.StatusNotFound, "no profile set up yet")
	}
	return profile, true, nil
}
