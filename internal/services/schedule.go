package services

import (
	"fmt"
	"math"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

const (
	ScheduleCompleted = "completed"
	ScheduleCurrent   = "current"
	ScheduleUpcoming  = "upcoming"
)

// Progress summarizes today's intake against the daily goal.
type Progress struct {
	Total      int `json:"total"`
	Goal       int `json:"goal"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

func BuildProgress(total int, goal int) Progress {
	progress := Progress{Total: total, Goal: goal}
	if goal <= 0 {
		return progress
	}

	percentage := int(math.Round(float64(total) / float64(goal) * 100))
	if percentage > 100 {
		percentage = 100
	}
	progress.Percentage = percentage

	if remaining := goal - total; remaining > 0 {
		progress.Remaining = remaining
	}
	return progress
}

// ScheduleEntry is one slot of the day's drinking plan.
type ScheduleEntry struct {
	Hour              int    `json:"hour"`
	Minute            int    `json:"minute"`
	Label             string `json:"label"`
	TargetIntake      int    `json:"targetIntake"`
	PercentageOfGoal  int    `json:"percentageOfGoal"`
	Status            string `json:"status"`
	RecommendedAmount int    `json:"recommendedAmount"`
}

// BuildDrinkingSchedule partitions the notification window into equal slots
// sized by the interval type and classifies each against today's total. With
// no enabled config it falls back to six two-hour slots across 08:00-18:00
// with a wider "current" tolerance.
func BuildDrinkingSchedule(config *models.ReminderConfig, goal int, todayTotal int, now time.Time) []ScheduleEntry {
	if goal <= 0 {
		return nil
	}

	startMinute := models.DefaultStartHour * 60
	slotMinutes := 120
	slotCount := 6
	currentTolerance := 60

	if config != nil && config.IsEnabled {
		windowMinutes := (config.EndHour - config.StartHour) * 60
		interval := models.IntervalMinutes(config.IntervalType)
		if windowMinutes <= 0 || interval <= 0 {
			return nil
		}
		startMinute = config.StartHour * 60
		slotMinutes = interval
		slotCount = windowMinutes / interval
		currentTolerance = 30
	}
	if slotCount <= 0 {
		return nil
	}

	nowMinute := now.Hour()*60 + now.Minute()
	slotShare := int(math.Round(float64(goal) / float64(slotCount)))

	entries := make([]ScheduleEntry, 0, slotCount)
	for i := 0; i < slotCount; i++ {
		slotMinute := startMinute + i*slotMinutes
		target := int(math.Round(float64(goal) * float64(i+1) / float64(slotCount)))

		status := ScheduleUpcoming
		switch {
		case todayTotal >= target:
			status = ScheduleCompleted
		case absInt(nowMinute-slotMinute) <= currentTolerance:
			status = ScheduleCurrent
		}

		recommended := target - todayTotal
		if recommended < 0 {
			recommended = 0
		}
		if recommended > slotShare {
			recommended = slotShare
		}

		entries = append(entries, ScheduleEntry{
			Hour:              slotMinute / 60,
			Minute:            slotMinute % 60,
			Label:             fmt.Sprintf("%02d:%02d", slotMinute/60, slotMinute%60),
			TargetIntake:      target,
			PercentageOfGoal:  int(math.Round(float64(target) / float64(goal) * 100)),
			Status:            status,
			RecommendedAmount: recommended,
		})
	}
	return entries
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
