package service

import (
	"context"
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	toggleFn         func(context.Context, uint, uint) (bool, error)
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	getFollowersFn   func(context.Context, uint, int, int) ([]models.User, error)
	getFollowingFn   func(context.Context, uint, int, int) ([]models.User, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.toggleFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.getFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.getFollowingFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		toggleFn:         func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		isFollowingFn:    func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		getFollowersFn:   func(_ context.Context, _ uint, _, _ int) ([]models.User, error) { return nil, nil },
		getFollowingFn:   func(_ context.Context, _ uint, _, _ int) ([]models.User, error) { return nil, nil },
		countFollowersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

func TestFollowService_ToggleFollow_SelfFollow(t *testing.T) {
	t.Parallel()

	toggled := false
	followRepo := noopFollowRepo()
	followRepo.toggleFn = func(_ context.Context, _, _ uint) (bool, error) {
		toggled = true
		return true, nil
	}
	svc := NewFollowService(followRepo, noopUserRepo())

	_, err := svc.ToggleFollow(context.Background(), 7, 7)
	assertValidationError(t, err)
	assert.False(t, toggled, "self-follow must be rejected before any write")
}

func TestFollowService_ToggleFollow_MissingTarget(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}
	svc := NewFollowService(noopFollowRepo(), userRepo)

	_, err := svc.ToggleFollow(context.Background(), 1, 404)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestFollowService_ToggleFollow_ReturnsCounts(t *testing.T) {
	t.Parallel()

	followRepo := noopFollowRepo()
	followRepo.toggleFn = func(_ context.Context, followerID, followingID uint) (bool, error) {
		assert.Equal(t, uint(1), followerID)
		assert.Equal(t, uint(2), followingID)
		return true, nil
	}
	followRepo.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 12, nil }
	followRepo.countFollowingFn = func(_ context.Context, _ uint) (int64, error) { return 3, nil }
	svc := NewFollowService(followRepo, noopUserRepo())

	status, err := svc.ToggleFollow(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, status.Following)
	assert.EqualValues(t, 12, status.FollowerCount)
	assert.EqualValues(t, 3, status.FollowingCount)
}
