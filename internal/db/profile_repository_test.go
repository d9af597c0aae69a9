package db

import (
	"errors"
	"testing"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

func TestProfileCreateAndFind(t *testing.T) {
	repositories := openTestDB(t)

	profile := models.Profile{Name: "Alex", Age: 30, WeightKg: 70, ActivityLevel: models.ActivityModerate, DailyWaterGoal: 2400}
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create: %v", err)
	}
	if profile.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if profile.CreatedAt.IsZero() || profile.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set on create")
	}

	found, err := repositories.Profiles.FindByID(profile.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Alex" || found.DailyWaterGoal != 2400 {
		t.Fatalf("unexpected profile %+v", found)
	}
}

func TestProfileFindByIDMissing(t *testing.T) {
	repositories := openTestDB(t)
	if _, err := repositories.Profiles.FindByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileFirstReturnsOldest(t *testing.T) {
	repositories := openTestDB(t)

	if _, found, err := repositories.Profiles.First(); err != nil || found {
		t.Fatalf("expected empty store, found=%v err=%v", found, err)
	}

	older := models.Profile{Name: "First"}
	newer := models.Profile{Name: "Second"}
	if err := repositories.Profiles.Create(&older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	if err := repositories.Profiles.Create(&newer); err != nil {
		t.Fatalf("create newer: %v", err)
	}

	current, found, err := repositories.Profiles.First()
	if err != nil || !found {
		t.Fatalf("first: found=%v err=%v", found, err)
	}
	if current.ID != older.ID {
		t.Fatalf("expected oldest profile %d, got %d", older.ID, current.ID)
	}
}

func TestProfileUpdateByID(t *testing.T) {
	repositories := openTestDB(t)

	profile := models.Profile{Name: "Alex", Age: 30, WeightKg: 70, ActivityLevel: models.ActivityLow, DailyWaterGoal: 2100}
	if err := repositories.Profiles.Create(&profile); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repositories.Profiles.UpdateByID(profile.ID, map[string]any{
		"weight_kg":        float64(75),
		"daily_water_goal": 2250,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := repositories.Profiles.FindByID(profile.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if updated.WeightKg != 75 || updated.DailyWaterGoal != 2250 {
		t.Fatalf("unexpected updated profile %+v", updated)
	}
	if updated.Name != "Alex" {
		t.Fatalf("expected untouched fields to survive, got %+v", updated)
	}

	if err := repositories.Profiles.UpdateByID(999, map[string]any{"age": 40}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}
