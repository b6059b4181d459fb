package service

import (
	"context"
	"errors"
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionService_Calculate_FromRequest(t *testing.T) {
	t.Parallel()

	var saved *models.User
	userRepo := noopUserRepo()
	userRepo.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}
	svc := NewNutritionService(userRepo)

	plan, err := svc.Calculate(context.Background(), 1, CalculateInput{
		Age:           intPtr(30),
		Gender:        strPtr("male"),
		HeightCm:      f64Ptr(180),
		WeightKg:      f64Ptr(80),
		ActivityLevel: strPtr("moderate"),
		Goal:          strPtr("maintain"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1780, plan.BMR)
	assert.Equal(t, 2759, plan.TDEE)
	assert.Equal(t, 2759, plan.TargetCalories)

	// Resolved inputs are written back to the profile.
	require.NotNil(t, saved)
	require.NotNil(t, saved.Age)
	assert.Equal(t, 30, *saved.Age)
	assert.Equal(t, "male", saved.Gender)
	assert.Equal(t, "moderate", saved.ActivityLevel)
	assert.Equal(t, "maintain", saved.Goal)
}

func TestNutritionService_Calculate_FallsBackToStoredProfile(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{
			ID:            id,
			Age:           intPtr(30),
			Gender:        "male",
			HeightCm:      f64Ptr(180),
			WeightKg:      f64Ptr(80),
			ActivityLevel: "moderate",
			Goal:          "maintain",
		}, nil
	}
	svc := NewNutritionService(userRepo)

	// Empty payload: everything comes from the stored profile.
	plan, err := svc.Calculate(context.Background(), 1, CalculateInput{})
	require.NoError(t, err)
	assert.Equal(t, 2759, plan.TargetCalories)

	// Partial payload overrides only what it names.
	plan, err = svc.Calculate(context.Background(), 1, CalculateInput{Goal: strPtr("lose")})
	require.NoError(t, err)
	assert.Equal(t, 2259, plan.TargetCalories)
	assert.Equal(t, "lose", plan.Goal)
}

func TestNutritionService_Calculate_DefaultsActivityAndGoal(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id}, nil
	}
	svc := NewNutritionService(userRepo)

	plan, err := svc.Calculate(context.Background(), 1, CalculateInput{
		Age:      intPtr(30),
		Gender:   strPtr("male"),
		HeightCm: f64Ptr(180),
		WeightKg: f64Ptr(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "moderate", plan.ActivityLevel)
	assert.Equal(t, "maintain", plan.Goal)
	assert.Equal(t, 2759, plan.TargetCalories)
}

func TestNutritionService_Calculate_MissingBiometrics(t *testing.T) {
	t.Parallel()

	updated := false
	userRepo := noopUserRepo()
	userRepo.updateFn = func(_ context.Context, _ *models.User) error {
		updated = true
		return nil
	}
	svc := NewNutritionService(userRepo)

	// No stored profile, no payload: the engine reports the missing fields.
	_, err := svc.Calculate(context.Background(), 1, CalculateInput{})
	assertValidationError(t, err)
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "weight")
	assert.Contains(t, err.Error(), "height")
	assert.Contains(t, err.Error(), "gender")
	assert.False(t, updated, "a failed calculation must not touch the stored profile")
}

func TestNutritionService_Calculate_FailedWriteBackFailsCall(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.updateFn = func(_ context.Context, _ *models.User) error {
		return models.NewInternalError(errors.New("pq: connection refused"))
	}
	svc := NewNutritionService(userRepo)

	// The write-back is a documented side effect; when it fails the call
	// must not hand back a plan as if everything completed.
	plan, err := svc.Calculate(context.Background(), 1, CalculateInput{
		Age:      intPtr(30),
		Gender:   strPtr("male"),
		HeightCm: f64Ptr(180),
		WeightKg: f64Ptr(80),
	})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeInternal))
	assert.Nil(t, plan)
}

func TestNutritionService_Calculate_MissingUser(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewNutritionService(userRepo)

	_, err := svc.Calculate(context.Background(), 404, CalculateInput{})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}
