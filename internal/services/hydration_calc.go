package services

import (
	"math"

	"github.com/dale-waterworth/HealthyMe/internal/models"
)

const (
	glassSizeMl           = 250
	maxBaseRecommendation = 3000
	nhsMinimumMl          = 1500
	nhsMaximumMl          = 2500
)

type HydrationFactors struct {
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weightKg"`
	ActivityLevel string  `json:"activityLevel"`
	Climate       string  `json:"climate"`
}

type HydrationResult struct {
	DailyWaterGoal        int `json:"dailyWaterGoal"`
	BaseRequirement       int `json:"baseRequirement"`
	ActivityBonus         int `json:"activityBonus"`
	AgeAdjustment         int `json:"ageAdjustment"`
	ClimateAdjustment     int `json:"climateAdjustment"`
	RecommendedGlasses    int `json:"recommendedGlasses"`
	RecommendedInterval   int `json:"recommendedInterval"`
	AdditionalForClimate  int `json:"additionalForClimate,omitempty"`
	AdditionalForExercise int `json:"additionalForExercise,omitempty"`
}

type NHSValidation struct {
	IsWithinRange  bool   `json:"isWithinRange"`
	NHSMinimum     int    `json:"nhsMinimum"`
	NHSMaximum     int    `json:"nhsMaximum"`
	Recommendation string `json:"recommendation"`
}

// CalculateDailyWaterNeed derives the personalized daily goal. Base is a
// conservative 30 ml per kg; age and activity adjust it; the result is capped
// at 3 litres. Climate never feeds the goal itself, it is surfaced as an
// additional suggestion only.
func CalculateDailyWaterNeed(factors HydrationFactors) HydrationResult {
	baseRequirement := factors.WeightKg * 30

	ageAdjustment := 0.0
	switch {
	case factors.Age >= 65:
		ageAdjustment = baseRequirement * 0.05
	case factors.Age < 18:
		ageAdjustment = baseRequirement * 0.10
	}

	activityBonus := 0
	switch factors.ActivityLevel {
	case models.ActivityModerate:
		activityBonus = 300
	case models.ActivityHigh:
		activityBonus = 500
	}

	climateAdjustment := 0
	switch factors.Climate {
	case models.ClimateHot:
		climateAdjustment = 300
	case models.ClimateHumid:
		climateAdjustment = 200
	}

	baseDailyGoal := int(math.Round(baseRequirement + ageAdjustment + float64(activityBonus)))
	dailyWaterGoal := baseDailyGoal
	if dailyWaterGoal > maxBaseRecommendation {
		dailyWaterGoal = maxBaseRecommendation
	}

	recommendedGlasses := int(math.Ceil(float64(dailyWaterGoal) / glassSizeMl))

	// Spread the goal over 16 waking hours, at least 6 intakes of at most
	// roughly 200 ml each.
	const wakingHours = 16
	totalIntakes := int(math.Ceil(float64(dailyWaterGoal) / 200))
	if totalIntakes < 6 {
		totalIntakes = 6
	}
	recommendedInterval := int(math.Round(wakingHours * 60 / float64(totalIntakes)))

	result := HydrationResult{
		DailyWaterGoal:      dailyWaterGoal,
		BaseRequirement:     int(math.Round(baseRequirement)),
		ActivityBonus:       activityBonus,
		AgeAdjustment:       int(math.Round(ageAdjustment)),
		ClimateAdjustment:   climateAdjustment,
		RecommendedGlasses:  recommendedGlasses,
		RecommendedInterval: recommendedInterval,
	}
	if factors.Climate != "" && factors.Climate != models.ClimateNormal {
		result.AdditionalForClimate = climateAdjustment
	}
	if factors.ActivityLevel == models.ActivityHigh {
		result.AdditionalForExercise = 300
	}
	return result
}

func ValidateAgainstNHSGuidelines(calculatedAmount int) NHSValidation {
	validation := NHSValidation{
		IsWithinRange: calculatedAmount >= nhsMinimumMl && calculatedAmount <= nhsMaximumMl,
		NHSMinimum:    nhsMinimumMl,
		NHSMaximum:    nhsMaximumMl,
	}

	switch {
	case calculatedAmount < nhsMinimumMl:
		validation.Recommendation = "Your calculated amount is below NHS recommendations. Consider increasing to at least 1.5 litres daily."
	case calculatedAmount > nhsMaximumMl:
		validation.Recommendation = "Your calculated amount is above typical NHS recommendations. This may be appropriate for your activity level, but consider consulting a healthcare provider."
	default:
		validation.Recommendation = "Your calculated amount aligns well with NHS guidelines of 1.5-2.5 litres daily."
	}
	return validation
}

// PersonalizedTips returns hydration advice matching the profile's age,
// activity level and climate.
func PersonalizedTips(factors HydrationFactors) []string {
	tips := make([]string, 0, 8)

	switch {
	case factors.Age >= 65:
		tips = append(tips,
			"Set regular reminders as thirst sensation decreases with age",
			"Keep water easily accessible to prevent falls when getting drinks",
		)
	case factors.Age < 18:
		tips = append(tips,
			"Encourage regular water breaks during school and activities",
			"Monitor urine color as a hydration indicator",
		)
	}

	switch factors.ActivityLevel {
	case models.ActivityHigh:
		tips = append(tips,
			"Drink an extra 300-500ml before, during, and after intense exercise",
			"Consider electrolyte replacement for activities over 1 hour",
			"Monitor your sweat rate to adjust intake on heavy exercise days",
		)
	case models.ActivityModerate:
		tips = append(tips,
			"Add an extra 200-300ml on days with more physical activity",
			"Drink water 30 minutes before moderate exercise",
		)
	case models.ActivityLow:
		tips = append(tips, "Use regular meal times as reminders to drink water")
	}

	switch factors.Climate {
	case models.ClimateHot:
		tips = append(tips,
			"Add an extra 300ml during hot weather to prevent heat exhaustion",
			"Drink cool (not ice-cold) water for better absorption",
			"Start hydrating early in hot days, before you feel thirsty",
		)
	case models.ClimateHumid:
		tips = append(tips,
			"Add an extra 200ml on humid days due to increased perspiration",
			"Pay attention to your body's cooling needs in humid conditions",
		)
	}

	tips = append(tips,
		"Use a straw or sports bottle cap to make drinking easier",
		"Include other fluids like tea, coffee, and milk in your daily intake",
		"Eat water-rich foods like fruits, vegetables, and soups",
	)
	return tips
}

func DehydrationWarnings() []string {
	return []string{
		"Dark yellow urine may indicate dehydration",
		"Feeling thirsty is already a sign you need fluids",
		"Watch for dizziness or feeling faint",
		"Headaches can be an early sign of dehydration",
		"Fatigue may indicate insufficient fluid intake",
	}
}
