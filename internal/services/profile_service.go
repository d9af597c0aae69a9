package services

import (
	"errors"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

var ErrInvalidProfileInput = errors.New("invalid profile input")

const defaultProfileName = "Default User"

type ProfileStore interface {
	Create(profile *models.Profile) error
	First() (models.Profile, bool, error)
	UpdateByID(profileID uint, updates map[string]any) error
}

// ProfileService runs the calculator flow: compute the personalized goal and
// persist it on the single current profile. "Current" is resolved here, once,
// so everything downstream works with an explicit profile id.
type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Current() (models.Profile, bool, error) {
	return service.profiles.First()
}

// SaveCalculated recomputes the goal from the factors and upserts the current
// profile with the result. A first save creates the profile, later saves
// update it in place.
func (service *ProfileService) SaveCalculated(name string, factors HydrationFactors) (models.Profile, HydrationResult, error) {
	if factors.Age < 0 || factors.WeightKg <= 0 || !models.IsValidActivityLevel(factors.ActivityLevel) {
		return models.Profile{}, HydrationResult{}, ErrInvalidProfileInput
	}

	result := CalculateDailyWaterNeed(factors)

	existing, found, err := service.profiles.First()
	if err != nil {
		return models.Profile{}, HydrationResult{}, err
	}

	if found {
		if err := service.profiles.UpdateByID(existing.ID, map[string]any{
			"age":               factors.Age,
			"weight_kg":         factors.WeightKg,
			"activity_level":    factors.ActivityLevel,
			"daily_water_goal":  result.DailyWaterGoal,
			"reminder_interval": result.RecommendedInterval,
		}); err != nil {
			return models.Profile{}, HydrationResult{}, err
		}
		refreshed, _, err := service.profiles.First()
		if err != nil {
			return models.Profile{}, HydrationResult{}, err
		}
		return refreshed, result, nil
	}

	if name == "" {
		name = defaultProfileName
	}
	profile := models.Profile{
		Name:             name,
		Age:              factors.Age,
		WeightKg:         factors.WeightKg,
		ActivityLevel:    factors.ActivityLevel,
		DailyWaterGoal:   result.DailyWaterGoal,
		ReminderInterval: result.RecommendedInterval,
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, HydrationResult{}, err
	}
	return profile, result, nil
}
