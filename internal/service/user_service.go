package service

import (
	"context"
	"strings"

	"fitpoint/internal/models"
	"fitpoint/internal/repository"
)

const maxBioLen = 500

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// Profile is a user enriched with social counters for profile pages.
type Profile struct {
	models.User
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}

// UpdateProfileInput carries the editable profile fields. Pointer fields
// distinguish "not sent" from "sent as zero".
type UpdateProfileInput struct {
	UserID        uint
	Bio           *string
	Avatar        *string
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *string
	Goal          *string
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile returns the user with follower counters, and whether
// viewerID (0 for anonymous) follows them.
func (s *UserService) GetProfile(ctx context.Context, id uint, viewerID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.followRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User:           *user,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}
	if viewerID != 0 && viewerID != id {
		profile.IsFollowing, err = s.followRepo.IsFollowing(ctx, viewerID, id)
		if err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		if len(bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = bio
	}
	if in.Avatar != nil {
		user.Avatar = strings.TrimSpace(*in.Avatar)
	}
	if in.Age != nil {
		if *in.Age < 13 || *in.Age > 120 {
			return nil, models.NewValidationError("Age must be between 13 and 120")
		}
		user.Age = in.Age
	}
	if in.Gender != nil {
		gender := strings.ToLower(strings.TrimSpace(*in.Gender))
		if gender != models.GenderMale && gender != models.GenderFemale {
			return nil, models.NewValidationError(`Gender must be "male" or "female"`)
		}
		user.Gender = gender
	}
	if in.HeightCm != nil {
		if *in.HeightCm < 50 || *in.HeightCm > 300 {
			return nil, models.NewValidationError("Height must be between 50 and 300 cm")
		}
		user.HeightCm = in.HeightCm
	}
	if in.WeightKg != nil {
		if *in.WeightKg < 20 || *in.WeightKg > 500 {
			return nil, models.NewValidationError("Weight must be between 20 and 500 kg")
		}
		user.WeightKg = in.WeightKg
	}
	if in.ActivityLevel != nil {
		level := strings.ToLower(strings.TrimSpace(*in.ActivityLevel))
		switch level {
		case models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
			models.ActivityActive, models.ActivityVeryActive:
		default:
			return nil, models.NewValidationError("Invalid activity_level")
		}
		user.ActivityLevel = level
	}
	if in.Goal != nil {
		goal := strings.ToLower(strings.TrimSpace(*in.Goal))
		switch goal {
		case models.GoalLose, models.GoalMaintain, models.GoalGain:
		default:
			return nil, models.NewValidationError("Invalid goal")
		}
		user.Goal = goal
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
