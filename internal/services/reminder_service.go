package services

import (
	"errors"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

var ErrInvalidReminderSettings = errors.New("invalid reminder settings")

type ReminderConfigRepository interface {
	FindByProfile(profileID uint) (models.ReminderConfig, bool, error)
	Upsert(config *models.ReminderConfig) error
}

type ReminderSettings struct {
	Enabled      bool   `json:"enabled"`
	IntervalType string `json:"intervalType"`
	StartHour    int    `json:"startHour"`
	EndHour      int    `json:"endHour"`
}

type ReminderSaveResult struct {
	Config           models.ReminderConfig `json:"config"`
	Enabled          bool                  `json:"enabled"`
	PermissionDenied bool                  `json:"permissionDenied,omitempty"`
}

// ReminderService is the settings flow: it upserts the profile's single
// config row and hands scheduling over to the scheduler, which owns the
// permission gate and the wake timer.
type ReminderService struct {
	reminders ReminderConfigRepository
	scheduler *ReminderScheduler
	location  *time.Location
}

func NewReminderService(reminders ReminderConfigRepository, scheduler *ReminderScheduler, location *time.Location) *ReminderService {
	if location == nil {
		location = time.Local
	}
	return &ReminderService{reminders: reminders, scheduler: scheduler, location: location}
}

func (service *ReminderService) Load(profileID uint) (models.ReminderConfig, bool, error) {
	return service.reminders.FindByProfile(profileID)
}

// Save persists the settings and applies them. Asking for enabled reminders
// without a notification grant leaves the stored config disabled and reports
// PermissionDenied instead of failing.
func (service *ReminderService) Save(profileID uint, settings ReminderSettings, now time.Time) (ReminderSaveResult, error) {
	if !models.IsValidIntervalType(settings.IntervalType) {
		return ReminderSaveResult{}, ErrInvalidReminderSettings
	}
	if settings.StartHour < 0 || settings.StartHour > 23 || settings.EndHour < 0 || settings.EndHour > 23 {
		return ReminderSaveResult{}, ErrInvalidReminderSettings
	}

	config := models.ReminderConfig{
		ProfileID:        profileID,
		IsEnabled:        false,
		IntervalType:     settings.IntervalType,
		StartHour:        settings.StartHour,
		EndHour:          settings.EndHour,
		LastReminder:     now,
		NextReminder:     service.nextReminderTime(settings, now),
		LastIntakeAmount: 0,
		LastIntakeTime:   now,
	}
	if err := service.reminders.Upsert(&config); err != nil {
		return ReminderSaveResult{}, err
	}

	result := ReminderSaveResult{Config: config}
	if settings.Enabled {
		enabled, err := service.scheduler.Enable(profileID)
		if err != nil {
			return ReminderSaveResult{}, err
		}
		result.Enabled = enabled
		result.PermissionDenied = !enabled
	} else {
		if err := service.scheduler.Disable(profileID); err != nil {
			return ReminderSaveResult{}, err
		}
	}

	if current, found, err := service.reminders.FindByProfile(profileID); err == nil && found {
		result.Config = current
	}
	return result, nil
}

// nextReminderTime mirrors the wake computation for the freshly saved
// settings: one interval from now, clamped into the notification window.
func (service *ReminderService) nextReminderTime(settings ReminderSettings, now time.Time) time.Time {
	next := now.In(service.location).Add(models.IntervalDuration(settings.IntervalType))
	if next.Hour() < settings.StartHour {
		return HourAtLocation(next, settings.StartHour, service.location)
	}
	if next.Hour() >= settings.EndHour {
		return HourAtLocation(next, settings.StartHour, service.location).AddDate(0, 0, 1)
	}
	return next
}
