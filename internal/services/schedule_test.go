package services

import (
	"testing"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

func TestBuildProgress(t *testing.T) {
	tests := []struct {
		name  string
		total int
		goal  int
		want  Progress
	}{
		{"empty day", 0, 2000, Progress{Total: 0, Goal: 2000, Percentage: 0, Remaining: 2000}},
		{"halfway", 1000, 2000, Progress{Total: 1000, Goal: 2000, Percentage: 50, Remaining: 1000}},
		{"goal reached", 2000, 2000, Progress{Total: 2000, Goal: 2000, Percentage: 100, Remaining: 0}},
		{"over goal caps at 100", 2600, 2000, Progress{Total: 2600, Goal: 2000, Percentage: 100, Remaining: 0}},
		{"zero goal", 500, 0, Progress{Total: 500, Goal: 0, Percentage: 0, Remaining: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildProgress(tt.total, tt.goal)
			if got != tt.want {
				t.Fatalf("BuildProgress(%d, %d) = %+v, want %+v", tt.total, tt.goal, got, tt.want)
			}
		})
	}
}

func TestBuildDrinkingScheduleDefault(t *testing.T) {
	noon := time.Date(2025, time.March, 10, 12, 15, 0, 0, time.UTC)
	entries := BuildDrinkingSchedule(nil, 2400, 900, noon)

	if len(entries) != 6 {
		t.Fatalf("expected 6 default slots, got %d", len(entries))
	}

	wantHours := []int{8, 10, 12, 14, 16, 18}
	for i, entry := range entries {
		if entry.Hour != wantHours[i] || entry.Minute != 0 {
			t.Fatalf("slot %d at %02d:%02d, want %02d:00", i, entry.Hour, entry.Minute, wantHours[i])
		}
	}

	// Targets grow linearly to the goal.
	if entries[0].TargetIntake != 400 || entries[5].TargetIntake != 2400 {
		t.Fatalf("expected targets 400..2400, got %d..%d", entries[0].TargetIntake, entries[5].TargetIntake)
	}
	if entries[5].PercentageOfGoal != 100 {
		t.Fatalf("expected final slot at 100%% of goal, got %d", entries[5].PercentageOfGoal)
	}

	// 900 ml covers the first two slots; 12:15 sits within the third slot's
	// tolerance.
	if entries[0].Status != ScheduleCompleted || entries[1].Status != ScheduleCompleted {
		t.Fatalf("expected first two slots completed, got %q, %q", entries[0].Status, entries[1].Status)
	}
	if entries[2].Status != ScheduleCurrent {
		t.Fatalf("expected noon slot current, got %q", entries[2].Status)
	}
	for i := 3; i < 6; i++ {
		if entries[i].Status != ScheduleUpcoming {
			t.Fatalf("expected slot %d upcoming, got %q", i, entries[i].Status)
		}
	}
}

func TestBuildDrinkingScheduleFromConfig(t *testing.T) {
	config := &models.ReminderConfig{
		IsEnabled:    true,
		IntervalType: models.IntervalHourly,
		StartHour:    9,
		EndHour:      13,
	}
	now := time.Date(2025, time.March, 10, 9, 5, 0, 0, time.UTC)
	entries := BuildDrinkingSchedule(config, 2000, 0, now)

	// 4-hour window with hourly slots, end hour excluded.
	if len(entries) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.Hour != 9+i {
			t.Fatalf("slot %d at hour %d, want %d", i, entry.Hour, 9+i)
		}
	}
	if entries[0].Status != ScheduleCurrent {
		t.Fatalf("expected 09:00 slot current at 09:05, got %q", entries[0].Status)
	}
	if entries[1].Status != ScheduleUpcoming {
		t.Fatalf("expected 10:00 slot outside the 30-minute tolerance, got %q", entries[1].Status)
	}
}

func TestBuildDrinkingScheduleRecommendedAmounts(t *testing.T) {
	goal := 2400
	now := time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

	for _, total := range []int{0, 350, 1200, 2400, 3000} {
		entries := BuildDrinkingSchedule(nil, goal, total, now)
		slotShare := goal / len(entries)

		previousTarget := 0
		for i, entry := range entries {
			if entry.TargetIntake <= previousTarget {
				t.Fatalf("total=%d: targets not strictly increasing at slot %d", total, i)
			}
			previousTarget = entry.TargetIntake

			if entry.RecommendedAmount < 0 || entry.RecommendedAmount > slotShare {
				t.Fatalf("total=%d slot %d: recommended %d outside [0, %d]",
					total, i, entry.RecommendedAmount, slotShare)
			}
			if total >= entry.TargetIntake && entry.RecommendedAmount != 0 {
				t.Fatalf("total=%d slot %d: completed slot still recommends %d",
					total, i, entry.RecommendedAmount)
			}
		}
	}
}

func TestBuildDrinkingScheduleDegenerateInputs(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	if entries := BuildDrinkingSchedule(nil, 0, 0, now); entries != nil {
		t.Fatalf("expected no schedule for zero goal, got %d entries", len(entries))
	}

	inverted := &models.ReminderConfig{
		IsEnabled:    true,
		IntervalType: models.IntervalHourly,
		StartHour:    18,
		EndHour:      8,
	}
	if entries := BuildDrinkingSchedule(inverted, 2000, 0, now); entries != nil {
		t.Fatalf("expected no schedule for inverted window, got %d entries", len(entries))
	}

	disabled := &models.ReminderConfig{
		IsEnabled:    false,
		IntervalType: models.IntervalHourly,
		StartHour:    9,
		EndHour:      13,
	}
	entries := BuildDrinkingSchedule(disabled, 2000, 0, now)
	if len(entries) != 6 {
		t.Fatalf("expected disabled config to fall back to the 6 default slots, got %d", len(entries))
	}
}
