package api

import (
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/db"
	"github.com/dale-waterworth/HealthyMe/internal/notify"
	"github.com/dale-waterworth/HealthyMe/internal/services"
	"gorm.io/gorm"
)

// NewHandler wires repositories and services over the prepared database
// handle. The scheduler is shared with main, which owns its lifecycle.
func NewHandler(database *gorm.DB, scheduler *services.ReminderScheduler, notifier notify.Dispatcher, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		location:        location,
		notifier:        notifier,
		repositories:    repositories,
		profileService:  services.NewProfileService(repositories.Profiles),
		intakeService:   services.NewIntakeService(repositories.Intakes, repositories.Reminders, notifier, location),
		reminderService: services.NewReminderService(repositories.Reminders, scheduler, location),
		setupService:    services.NewSetupService(repositories.Profiles),
		scheduler:       scheduler,
	}
}
