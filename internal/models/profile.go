package models

import "time"

const (
	ActivityLow      = "low"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"
)

const (
	ClimateNormal = "normal"
	ClimateHot    = "hot"
	ClimateHumid  = "humid"
)

// Profile holds the single local user's biometrics and computed hydration goal.
// The store allows several rows, but the application treats the lowest id as
// the current profile; resolution happens once at the API edge and every
// service call receives the profile id explicitly.
type Profile struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"index;not null;default:''" json:"name"`
	Age              int       `gorm:"not null;default:0" json:"age"`
	WeightKg         float64   `gorm:"not null;default:0" json:"weightKg"`
	ActivityLevel    string    `gorm:"not null;default:moderate" json:"activityLevel"`
	DailyWaterGoal   int       `gorm:"not null;default:0" json:"dailyWaterGoal"`
	ReminderInterval int       `gorm:"not null;default:60" json:"reminderInterval"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func IsValidActivityLevel(level string) bool {
	switch level {
	case ActivityLow, ActivityModerate, ActivityHigh:
		return true
	default:
		return false
	}
}
