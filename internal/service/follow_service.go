package service

import (
	"context"

	"fitpoint/internal/models"
	"fitpoint/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowStatus is the outcome of a follow toggle.
type FollowStatus struct {
	Following      bool  `json:"following"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// ToggleFollow follows or unfollows targetID on behalf of followerID.
// Following yourself is rejected outright rather than stored and filtered.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, targetID uint) (*FollowStatus, error) {
	if followerID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	following, err := s.followRepo.Toggle(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.followRepo.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(ctx, targetID)
	if err != nil {
		return nil, err
	}

	return &FollowStatus{
		Following:      following,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}, nil
}

func (s *FollowService) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID, limit, offset)
}

func (s *FollowService) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID, limit, offset)
}
