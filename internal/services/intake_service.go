package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
	"github.com/dale-waterworth/HealthyMe/internal/notify"
)

var ErrInvalidIntakeAmount = errors.New("intake amount must be positive")

type IntakeEventRepository interface {
	Create(event *models.IntakeEvent) error
	DeleteByID(eventID uint) error
	ListByProfile(profileID uint, from *time.Time, to *time.Time) ([]models.IntakeEvent, error)
	SumForRange(profileID uint, start time.Time, end time.Time) (int, error)
}

type IntakeReminderSnapshotWriter interface {
	FindByProfile(profileID uint) (models.ReminderConfig, bool, error)
	UpdateByID(configID uint, updates map[string]any) error
}

// IntakeService owns the intake ledger flow: logging, deleting and deriving
// totals. Totals are always recomputed from the ledger, so a delete reverses
// exactly the contribution the event made.
type IntakeService struct {
	intakes   IntakeEventRepository
	reminders IntakeReminderSnapshotWriter
	notifier  notify.Dispatcher
	location  *time.Location
}

func NewIntakeService(intakes IntakeEventRepository, reminders IntakeReminderSnapshotWriter, notifier notify.Dispatcher, location *time.Location) *IntakeService {
	if location == nil {
		location = time.Local
	}
	return &IntakeService{
		intakes:   intakes,
		reminders: reminders,
		notifier:  notifier,
		location:  location,
	}
}

func (service *IntakeService) TodayTotal(profileID uint, now time.Time) (int, error) {
	dayStart, dayEnd := DayRange(now, service.location)
	return service.intakes.SumForRange(profileID, dayStart, dayEnd)
}

// Recent returns today's events newest-first, capped to the given limit.
func (service *IntakeService) Recent(profileID uint, now time.Time, limit int) ([]models.IntakeEvent, error) {
	dayStart, _ := DayRange(now, service.location)
	events, err := service.intakes.ListByProfile(profileID, &dayStart, nil)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// Log records one intake event for the profile, refreshes the reminder
// config's last-intake snapshot and announces progress through the notifier.
func (service *IntakeService) Log(profile models.Profile, amount int, now time.Time) (models.IntakeEvent, Progress, error) {
	if amount <= 0 {
		return models.IntakeEvent{}, Progress{}, ErrInvalidIntakeAmount
	}

	event := models.IntakeEvent{
		ProfileID: profile.ID,
		Amount:    amount,
		Timestamp: now,
	}
	if err := service.intakes.Create(&event); err != nil {
		return models.IntakeEvent{}, Progress{}, err
	}

	service.refreshIntakeSnapshot(profile.ID, amount, now)

	total, err := service.TodayTotal(profile.ID, now)
	if err != nil {
		return models.IntakeEvent{}, Progress{}, err
	}
	progress := BuildProgress(total, profile.DailyWaterGoal)

	if service.notifier != nil {
		service.notifier.Show("Water Intake Logged", waterLoggedMessage(amount, progress), notify.Options{Tag: "water-logged"})
		service.announceAchievements(progress)
	}
	return event, progress, nil
}

func (service *IntakeService) Delete(eventID uint) error {
	return service.intakes.DeleteByID(eventID)
}

// refreshIntakeSnapshot keeps the reminder config's last-intake fields in step
// with the ledger. Best effort: a profile without a config simply has no
// snapshot to refresh.
func (service *IntakeService) refreshIntakeSnapshot(profileID uint, amount int, now time.Time) {
	if service.reminders == nil {
		return
	}
	config, found, err := service.reminders.FindByProfile(profileID)
	if err != nil || !found {
		return
	}
	_ = service.reminders.UpdateByID(config.ID, map[string]any{
		"last_intake_amount": amount,
		"last_intake_time":   now,
	})
}

func (service *IntakeService) announceAchievements(progress Progress) {
	switch {
	case progress.Percentage >= 100 && progress.Percentage < 105:
		service.notifier.Show("Achievement Unlocked!", "Daily hydration goal achieved!", notify.Options{Tag: "achievement", RequireInteraction: true})
	case progress.Percentage >= 50 && progress.Percentage < 55:
		service.notifier.Show("Achievement Unlocked!", "Halfway to your daily goal!", notify.Options{Tag: "achievement", RequireInteraction: true})
	}
}

func waterLoggedMessage(amount int, progress Progress) string {
	if progress.Remaining > 0 {
		return fmt.Sprintf("Added %dml! Today: %dml (%d%% of goal). %dml remaining.",
			amount, progress.Total, progress.Percentage, progress.Remaining)
	}
	return fmt.Sprintf("Goal achieved! Added %dml. Today: %dml (%d%% of goal)",
		amount, progress.Total, progress.Percentage)
}
