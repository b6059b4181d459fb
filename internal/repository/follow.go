package repository

import (
	"context"

	"fitpoint/internal/models"
	"fitpoint/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations for follow relationships.
type FollowRepository interface {
	Toggle(ctx context.Context, followerID, followingID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
	GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Toggle follows or unfollows with the same atomic conditional-insert scheme
// as like toggling: ON CONFLICT DO NOTHING against the unique
// (follower_id, following_id) index, delete when the row already exists,
// one retry if a concurrent toggle stole the delete.
func (r *followRepository) Toggle(ctx context.Context, followerID, followingID uint) (bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		res := r.db.WithContext(ctx).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
				DoNothing: true,
			}).
			Create(&models.Follow{FollowerID: followerID, FollowingID: followingID})
		if res.Error != nil {
			return false, models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 1 {
			return true, nil
		}

		del := r.db.WithContext(ctx).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if del.Error != nil {
			return false, models.NewInternalError(del.Error)
		}
		if del.RowsAffected > 0 {
			return false, nil
		}

		observability.ToggleRetries.WithLabelValues("follow").Inc()
	}

	return false, models.NewConflictError("Follow toggle lost a concurrent race")
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
