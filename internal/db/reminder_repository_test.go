package db

import (
	"errors"
	"testing"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

func TestReminderUpsertKeepsSingleRow(t *testing.T) {
	repositories := openTestDB(t)

	first := models.ReminderConfig{ProfileID: 1, IntervalType: models.IntervalHourly, StartHour: 8, EndHour: 18}
	if err := repositories.Reminders.Upsert(&first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := models.ReminderConfig{ProfileID: 1, IntervalType: models.IntervalFourHour, StartHour: 9, EndHour: 21}
	if err := repositories.Reminders.Upsert(&second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected upsert to reuse row %d, got %d", first.ID, second.ID)
	}

	stored, found, err := repositories.Reminders.FindByProfile(1)
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if stored.IntervalType != models.IntervalFourHour || stored.StartHour != 9 || stored.EndHour != 21 {
		t.Fatalf("expected second settings to win, got %+v", stored)
	}
}

func TestReminderFindByProfileMissing(t *testing.T) {
	repositories := openTestDB(t)
	if _, found, err := repositories.Reminders.FindByProfile(7); err != nil || found {
		t.Fatalf("expected no config, found=%v err=%v", found, err)
	}
}

func TestReminderUpdateByID(t *testing.T) {
	repositories := openTestDB(t)

	config := models.ReminderConfig{ProfileID: 1, IntervalType: models.IntervalHourly, StartHour: 8, EndHour: 18}
	if err := repositories.Reminders.Upsert(&config); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	next := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	err := repositories.Reminders.UpdateByID(config.ID, map[string]any{
		"is_enabled":    true,
		"next_reminder": next,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, _, err := repositories.Reminders.FindByProfile(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.IsEnabled {
		t.Fatal("expected enabled after update")
	}
	if stored.NextReminder.Unix() != next.Unix() {
		t.Fatalf("expected next reminder %v, got %v", next, stored.NextReminder)
	}

	if err := repositories.Reminders.UpdateByID(999, map[string]any{"is_enabled": false}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestReminderListEnabled(t *testing.T) {
	repositories := openTestDB(t)

	enabled := models.ReminderConfig{ProfileID: 1, IsEnabled: true, IntervalType: models.IntervalHourly, StartHour: 8, EndHour: 18}
	disabled := models.ReminderConfig{ProfileID: 2, IsEnabled: false, IntervalType: models.IntervalHourly, StartHour: 8, EndHour: 18}
	if err := repositories.Reminders.Upsert(&enabled); err != nil {
		t.Fatalf("upsert enabled: %v", err)
	}
	if err := repositories.Reminders.Upsert(&disabled); err != nil {
		t.Fatalf("upsert disabled: %v", err)
	}

	configs, err := repositories.Reminders.ListEnabled()
	if err != nil {
		t.Fatalf("list enabled: %v", err)
	}
	if len(configs) != 1 || configs[0].ProfileID != 1 {
		t.Fatalf("expected only profile 1's config, got %+v", configs)
	}
}
