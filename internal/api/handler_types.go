package api

import (
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/db"
	"github.com/dale-waterworth/HealthyMe/internal/notify"
	"github.com/dale-waterworth/HealthyMe/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	location *time.Location
	notifier notify.Dispatcher

	repositories    *db.Repositories
	profileService  *services.ProfileService
	intakeService   *services.IntakeService
	reminderService *services.ReminderService
	setupService    *services.SetupService
	scheduler       *services.ReminderScheduler
}

const recentIntakeLimit = 10
