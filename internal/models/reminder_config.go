package models

import "time"

const (
	IntervalHalfHour = "half-hour"
	IntervalHourly   = "hourly"
	IntervalFourHour = "four-hour"
)

const (
	DefaultStartHour = 8
	DefaultEndHour   = 18
)

// ReminderConfig is the per-profile reminder settings row. At most one row per
// profile; the repository upserts rather than creating duplicates. StartHour
// and EndHour bound the daily [start, end) notification window in local clock
// hours. The last-intake snapshot feeds the suppression heuristics.
type ReminderConfig struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	ProfileID        uint      `gorm:"index;not null" json:"profileId"`
	IsEnabled        bool      `gorm:"not null;default:false" json:"isEnabled"`
	IntervalType     string    `gorm:"not null;default:hourly" json:"intervalType"`
	StartHour        int       `gorm:"not null;default:8" json:"startHour"`
	EndHour          int       `gorm:"not null;default:18" json:"endHour"`
	LastReminder     time.Time `json:"lastReminder"`
	NextReminder     time.Time `json:"nextReminder"`
	LastIntakeAmount int       `gorm:"not null;default:0" json:"lastIntakeAmount"`
	LastIntakeTime   time.Time `json:"lastIntakeTime"`
}

func IsValidIntervalType(intervalType string) bool {
	switch intervalType {
	case IntervalHalfHour, IntervalHourly, IntervalFourHour:
		return true
	default:
		return false
	}
}

// IntervalMinutes maps an interval type to its spacing in minutes. Unknown
// values fall back to hourly, the store default.
func IntervalMinutes(intervalType string) int {
	switch intervalType {
	case IntervalHalfHour:
		return 30
	case IntervalFourHour:
		return 240
	default:
		return 60
	}
}

func IntervalDuration(intervalType string) time.Duration {
	return time.Duration(IntervalMinutes(intervalType)) * time.Minute
}
