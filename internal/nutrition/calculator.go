// Package nutrition implements the daily nutrition targeting engine.
// It is a pure computation over a fully-resolved profile snapshot: a
// Mifflin-St Jeor basal metabolic rate, scaled by activity into a total
// daily energy expenditure, adjusted for the user's goal and split into
// a protein/fat/carbohydrate macro breakdown.
package nutrition

import (
	"fmt"
	"math"
	"strings"

	"fitpoint/internal/models"
)

// Profile is the resolved input snapshot for one calculation.
type Profile struct {
	AgeYears      int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

// Macro is one macronutrient allocation. Percentage is rounded
// independently of the other macros, so the three percentages are not
// forced to sum to exactly 100.
type Macro struct {
	Grams      int `json:"grams"`
	Calories   int `json:"calories"`
	Percentage int `json:"percentage"`
}

// Macros is the full macronutrient split for a calorie target.
type Macros struct {
	Protein Macro `json:"protein"`
	Carbs   Macro `json:"carbs"`
	Fat     Macro `json:"fat"`
}

// Plan is the computed nutrition target for a profile.
type Plan struct {
	BMR            int    `json:"bmr"`
	TDEE           int    `json:"tdee"`
	TargetCalories int    `json:"targetCalories"`
	Goal           string `json:"goal"`
	ActivityLevel  string `json:"activityLevel"`
	Macros         Macros `json:"macros"`
}

// activityMultipliers scales BMR into TDEE.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// defaultActivityMultiplier is used for unrecognized activity levels.
// An unknown level is intentionally NOT an error; it falls back to the
// moderate multiplier.
const defaultActivityMultiplier = 1.55

// goalAdjustments shifts TDEE toward the user's goal (±1 lb per week).
// Unknown goals fall back to no adjustment, same policy as activity.
var goalAdjustments = map[string]float64{
	models.GoalLose:     -500,
	models.GoalMaintain: 0,
	models.GoalGain:     500,
}

const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarb    = 4
	caloriesPerGramFat     = 9

	proteinGramsPerKg = 2.2  // 1 g per lb of body weight
	fatCalorieShare   = 0.25 // 25% of the target from fat
)

// Calculate derives a nutrition Plan from the profile. It is
// side-effect free; the only failure mode is input validation.
func (p Profile) Calculate() (*Plan, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	gender := strings.ToLower(p.Gender)
	activity := strings.ToLower(p.ActivityLevel)
	goal := strings.ToLower(p.Goal)

	// Mifflin-St Jeor equation.
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	tdee := bmr * multiplier

	target := tdee + goalAdjustments[goal]

	// Macro split in fixed priority order: protein first, fat second,
	// carbs as the remainder. The remainder may go negative for
	// pathological low-calorie/high-weight inputs; it is not clamped.
	proteinGrams := int(math.Round(p.WeightKg * proteinGramsPerKg))
	proteinCalories := proteinGrams * caloriesPerGramProtein

	fatGrams := int(math.Round(target * fatCalorieShare / caloriesPerGramFat))
	fatCalories := fatGrams * caloriesPerGramFat

	carbCalories := target - float64(proteinCalories) - float64(fatCalories)
	carbGrams := int(math.Round(carbCalories / caloriesPerGramCarb))

	return &Plan{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		TargetCalories: int(math.Round(target)),
		Goal:           goal,
		ActivityLevel:  activity,
		Macros: Macros{
			Protein: Macro{
				Grams:      proteinGrams,
				Calories:   proteinCalories,
				Percentage: roundedShare(float64(proteinCalories), target),
			},
			Carbs: Macro{
				Grams:      carbGrams,
				Calories:   int(math.Round(carbCalories)),
				Percentage: roundedShare(carbCalories, target),
			},
			Fat: Macro{
				Grams:      fatGrams,
				Calories:   fatCalories,
				Percentage: roundedShare(float64(fatCalories), target),
			},
		},
	}, nil
}

// validate checks the profile for missing or non-positive required
// fields and reports every offender in a single error.
func (p Profile) validate() error {
	var missing []string
	if p.AgeYears <= 0 {
		missing = append(missing, "age")
	}
	if p.WeightKg <= 0 {
		missing = append(missing, "weight")
	}
	if p.HeightCm <= 0 {
		missing = append(missing, "height")
	}
	if strings.TrimSpace(p.Gender) == "" {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return models.NewValidationError(
			fmt.Sprintf("Missing or invalid required field(s): %s", strings.Join(missing, ", ")))
	}

	switch strings.ToLower(p.Gender) {
	case models.GenderMale, models.GenderFemale:
	default:
		return models.NewValidationError(`Gender must be "male" or "female"`)
	}

	return nil
}

// roundedShare returns calories as a rounded percentage of target.
func roundedShare(calories, target float64) int {
	return int(math.Round(calories / target * 100))
}
