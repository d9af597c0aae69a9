package services

import (
	"strings"
	"testing"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

func TestCalculateDailyWaterNeedModerateAdult(t *testing.T) {
	result := CalculateDailyWaterNeed(HydrationFactors{
		Age:           30,
		WeightKg:      70,
		ActivityLevel: models.ActivityModerate,
		Climate:       models.ClimateNormal,
	})

	if result.BaseRequirement != 2100 {
		t.Fatalf("expected base 2100, got %d", result.BaseRequirement)
	}
	if result.ActivityBonus != 300 {
		t.Fatalf("expected activity bonus 300, got %d", result.ActivityBonus)
	}
	if result.AgeAdjustment != 0 {
		t.Fatalf("expected no age adjustment, got %d", result.AgeAdjustment)
	}
	if result.DailyWaterGoal != 2400 {
		t.Fatalf("expected goal 2400, got %d", result.DailyWaterGoal)
	}
	if result.RecommendedGlasses != 10 {
		t.Fatalf("expected 10 glasses, got %d", result.RecommendedGlasses)
	}
	if result.RecommendedInterval != 80 {
		t.Fatalf("expected 80 minute interval, got %d", result.RecommendedInterval)
	}
	if result.AdditionalForClimate != 0 || result.AdditionalForExercise != 0 {
		t.Fatalf("expected no additional suggestions, got climate=%d exercise=%d",
			result.AdditionalForClimate, result.AdditionalForExercise)
	}

	validation := ValidateAgainstNHSGuidelines(result.DailyWaterGoal)
	if !validation.IsWithinRange {
		t.Fatalf("expected 2400 to be within NHS range, got %+v", validation)
	}
}

func TestCalculateDailyWaterNeedCapsAtThreeLitres(t *testing.T) {
	result := CalculateDailyWaterNeed(HydrationFactors{
		Age:           70,
		WeightKg:      80,
		ActivityLevel: models.ActivityHigh,
		Climate:       models.ClimateHot,
	})

	// Uncapped: 2400 base + 120 age + 500 activity = 3020.
	if result.BaseRequirement != 2400 {
		t.Fatalf("expected base 2400, got %d", result.BaseRequirement)
	}
	if result.AgeAdjustment != 120 {
		t.Fatalf("expected age adjustment 120, got %d", result.AgeAdjustment)
	}
	if result.ActivityBonus != 500 {
		t.Fatalf("expected activity bonus 500, got %d", result.ActivityBonus)
	}
	if result.DailyWaterGoal != 3000 {
		t.Fatalf("expected goal capped at 3000, got %d", result.DailyWaterGoal)
	}
	if result.AdditionalForClimate != 300 {
		t.Fatalf("expected additional 300 for hot climate, got %d", result.AdditionalForClimate)
	}
	if result.AdditionalForExercise != 300 {
		t.Fatalf("expected additional 300 for exercise, got %d", result.AdditionalForExercise)
	}

	validation := ValidateAgainstNHSGuidelines(result.DailyWaterGoal)
	if validation.IsWithinRange {
		t.Fatal("expected 3000 to be above NHS range")
	}
	if !strings.Contains(validation.Recommendation, "above typical") {
		t.Fatalf("expected above-typical recommendation, got %q", validation.Recommendation)
	}
}

func TestCalculateDailyWaterNeedYouthAdjustment(t *testing.T) {
	result := CalculateDailyWaterNeed(HydrationFactors{
		Age:           15,
		WeightKg:      50,
		ActivityLevel: models.ActivityLow,
		Climate:       models.ClimateNormal,
	})

	// 1500 base + 10% youth adjustment.
	if result.AgeAdjustment != 150 {
		t.Fatalf("expected age adjustment 150, got %d", result.AgeAdjustment)
	}
	if result.DailyWaterGoal != 1650 {
		t.Fatalf("expected goal 1650, got %d", result.DailyWaterGoal)
	}

	validation := ValidateAgainstNHSGuidelines(result.DailyWaterGoal)
	if !validation.IsWithinRange {
		t.Fatalf("expected 1650 to be within NHS range, got %+v", validation)
	}
}

func TestValidateAgainstNHSGuidelinesBelowMinimum(t *testing.T) {
	validation := ValidateAgainstNHSGuidelines(1200)
	if validation.IsWithinRange {
		t.Fatal("expected 1200 to be below NHS range")
	}
	if !strings.Contains(validation.Recommendation, "below NHS") {
		t.Fatalf("expected below-range recommendation, got %q", validation.Recommendation)
	}
}

func TestPersonalizedTipsMatchFactors(t *testing.T) {
	tips := PersonalizedTips(HydrationFactors{
		Age:           68,
		WeightKg:      72,
		ActivityLevel: models.ActivityHigh,
		Climate:       models.ClimateHot,
	})
	if len(tips) == 0 {
		t.Fatal("expected tips for senior high-activity hot-climate profile")
	}

	joined := strings.Join(tips, "\n")
	for _, want := range []string{"thirst sensation decreases with age", "intense exercise", "hot weather"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected tips to mention %q, got:\n%s", want, joined)
		}
	}
}
