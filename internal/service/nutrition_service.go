package service

import (
	"context"
	"strings"

	"fitpoint/internal/models"
	"fitpoint/internal/nutrition"
	"fitpoint/internal/observability"
	"fitpoint/internal/repository"
)

type NutritionService struct {
	userRepo repository.UserRepository
}

// CalculateInput is the request payload for a nutrition calculation.
// Every field is optional; omitted fields fall back to the caller's
// stored biometric profile.
type CalculateInput struct {
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Goal          *string  `json:"goal"`
}

func NewNutritionService(userRepo repository.UserRepository) *NutritionService {
	return &NutritionService{userRepo: userRepo}
}

// Calculate resolves the request against the user's stored profile,
// runs the nutrition engine, and persists the resolved inputs back so
// the next calculation can run without a payload.
func (s *NutritionService) Calculate(ctx context.Context, userID uint, in CalculateInput) (*nutrition.Plan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := s.resolveProfile(user, in)

	plan, err := profile.Calculate()
	if err != nil {
		return nil, err
	}

	// The write-back is part of the operation's contract: a plan must not
	// come back as a success when the resolved profile failed to persist.
	if err := s.persistProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	observability.NutritionCalculations.WithLabelValues(plan.Goal).Inc()
	return plan, nil
}

// resolveProfile merges the request over the stored profile. Activity
// and goal get conservative defaults when neither source has a value;
// the required biometrics are left zero and the engine reports them.
func (s *NutritionService) resolveProfile(user *models.User, in CalculateInput) nutrition.Profile {
	profile := nutrition.Profile{
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		Goal:          user.Goal,
	}
	if user.Age != nil {
		profile.AgeYears = *user.Age
	}
	if user.HeightCm != nil {
		profile.HeightCm = *user.HeightCm
	}
	if user.WeightKg != nil {
		profile.WeightKg = *user.WeightKg
	}

	if in.Age != nil {
		profile.AgeYears = *in.Age
	}
	if in.Gender != nil {
		profile.Gender = *in.Gender
	}
	if in.HeightCm != nil {
		profile.HeightCm = *in.HeightCm
	}
	if in.WeightKg != nil {
		profile.WeightKg = *in.WeightKg
	}
	if in.ActivityLevel != nil {
		profile.ActivityLevel = *in.ActivityLevel
	}
	if in.Goal != nil {
		profile.Goal = *in.Goal
	}

	profile.Gender = strings.ToLower(strings.TrimSpace(profile.Gender))
	profile.ActivityLevel = strings.ToLower(strings.TrimSpace(profile.ActivityLevel))
	profile.Goal = strings.ToLower(strings.TrimSpace(profile.Goal))

	if profile.ActivityLevel == "" {
		profile.ActivityLevel = models.ActivityModerate
	}
	if profile.Goal == "" {
		profile.Goal = models.GoalMaintain
	}

	return profile
}

// persistProfile writes the resolved inputs back to the user.
func (s *NutritionService) persistProfile(ctx context.Context, user *models.User, profile nutrition.Profile) error {
	age := profile.AgeYears
	height := profile.HeightCm
	weight := profile.WeightKg

	user.Age = &age
	user.Gender = profile.Gender
	user.HeightCm = &height
	user.WeightKg = &weight
	user.ActivityLevel = profile.ActivityLevel
	user.Goal = profile.Goal

	return s.userRepo.Update(ctx, user)
}
