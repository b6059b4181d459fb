package nutrition

import (
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWorkedExample(t *testing.T) {
	t.Parallel()

	plan, err := Profile{
		AgeYears:      30,
		WeightKg:      80,
		HeightCm:      180,
		Gender:        "male",
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}.Calculate()
	require.NoError(t, err)

	assert.Equal(t, 1780, plan.BMR)
	assert.Equal(t, 2759, plan.TDEE)
	assert.Equal(t, 2759, plan.TargetCalories)

	assert.Equal(t, 176, plan.Macros.Protein.Grams)
	assert.Equal(t, 704, plan.Macros.Protein.Calories)
	assert.Equal(t, 77, plan.Macros.Fat.Grams)
	assert.Equal(t, 693, plan.Macros.Fat.Calories)
	// Carbs are the remainder: 2759 - 704 - 693 = 1362 calories.
	assert.Equal(t, 1362, plan.Macros.Carbs.Calories)
	assert.Equal(t, 341, plan.Macros.Carbs.Grams)

	assert.Equal(t, "maintain", plan.Goal)
	assert.Equal(t, "moderate", plan.ActivityLevel)
}

func TestCalculateFemaleFormula(t *testing.T) {
	t.Parallel()

	plan, err := Profile{
		AgeYears:      30,
		WeightKg:      60,
		HeightCm:      165,
		Gender:        "female",
		ActivityLevel: "light",
		Goal:          "lose",
	}.Calculate()
	require.NoError(t, err)

	// bmr = 600 + 1031.25 - 150 - 161 = 1320.25
	assert.Equal(t, 1320, plan.BMR)
	// tdee = 1320.25 * 1.375 = 1815.34...
	assert.Equal(t, 1815, plan.TDEE)
	// target = tdee - 500 = 1315.34...
	assert.Equal(t, 1315, plan.TargetCalories)
}

func TestCalculateUnknownActivityFallsBackToModerate(t *testing.T) {
	t.Parallel()

	base := Profile{
		AgeYears: 30, WeightKg: 80, HeightCm: 180,
		Gender: "male", ActivityLevel: "extreme", Goal: "maintain",
	}
	plan, err := base.Calculate()
	require.NoError(t, err)

	base.ActivityLevel = "moderate"
	moderate, err := base.Calculate()
	require.NoError(t, err)

	assert.Equal(t, moderate.TDEE, plan.TDEE, "unknown activity level must use the moderate multiplier")
}

func TestCalculateUnknownGoalFallsBackToMaintain(t *testing.T) {
	t.Parallel()

	plan, err := Profile{
		AgeYears: 30, WeightKg: 80, HeightCm: 180,
		Gender: "male", ActivityLevel: "moderate", Goal: "bulk-hard",
	}.Calculate()
	require.NoError(t, err)

	assert.Equal(t, plan.TDEE, plan.TargetCalories, "unknown goal must apply no adjustment")
}

func TestCalculateNegativeCarbRemainderIsNotClamped(t *testing.T) {
	t.Parallel()

	plan, err := Profile{
		AgeYears: 90, WeightKg: 150, HeightCm: 140,
		Gender: "female", ActivityLevel: "sedentary", Goal: "lose",
	}.Calculate()
	require.NoError(t, err)

	assert.Negative(t, plan.Macros.Carbs.Calories)
	assert.Negative(t, plan.Macros.Carbs.Grams)
}

func TestCalculatePercentagesRoughlySumToHundred(t *testing.T) {
	t.Parallel()

	profiles := []Profile{
		{AgeYears: 25, WeightKg: 70, HeightCm: 175, Gender: "male", ActivityLevel: "active", Goal: "gain"},
		{AgeYears: 45, WeightKg: 95, HeightCm: 182, Gender: "male", ActivityLevel: "sedentary", Goal: "lose"},
		{AgeYears: 33, WeightKg: 58, HeightCm: 160, Gender: "female", ActivityLevel: "very_active", Goal: "maintain"},
	}

	for _, p := range profiles {
		plan, err := p.Calculate()
		require.NoError(t, err)

		sum := 0
		for _, m := range []Macro{plan.Macros.Protein, plan.Macros.Carbs, plan.Macros.Fat} {
			assert.GreaterOrEqual(t, m.Percentage, 0)
			assert.LessOrEqual(t, m.Percentage, 100)
			sum += m.Percentage
		}
		// Percentages are rounded independently; they should land near
		// 100 but are not forced to hit it exactly.
		assert.InDelta(t, 100, sum, 3)
	}
}

func TestCalculateValidationNamesMissingFields(t *testing.T) {
	t.Parallel()

	_, err := Profile{Gender: "male"}.Calculate()
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeValidation))
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "weight")
	assert.Contains(t, err.Error(), "height")
	assert.NotContains(t, err.Error(), "gender")

	_, err = Profile{AgeYears: 30, WeightKg: 80, HeightCm: 180}.Calculate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gender")
}

func TestCalculateRejectsUnknownGender(t *testing.T) {
	t.Parallel()

	_, err := Profile{
		AgeYears: 30, WeightKg: 80, HeightCm: 180,
		Gender: "other", ActivityLevel: "moderate", Goal: "maintain",
	}.Calculate()
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeValidation))
}

func TestCalculateNormalizesCase(t *testing.T) {
	t.Parallel()

	plan, err := Profile{
		AgeYears: 30, WeightKg: 80, HeightCm: 180,
		Gender: "Male", ActivityLevel: "Moderate", Goal: "MAINTAIN",
	}.Calculate()
	require.NoError(t, err)
	assert.Equal(t, 1780, plan.BMR)
	assert.Equal(t, "maintain", plan.Goal)
	assert.Equal(t, "moderate", plan.ActivityLevel)
}
