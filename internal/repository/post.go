// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"fitpoint/internal/cache"
	"fitpoint/internal/models"
	"fitpoint/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error)
	ToggleLike(ctx context.Context, postID, userID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// List returns the feed: newest first, ties broken by descending id so the
// ordering is total and never depends on storage order.
func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
// The counters are always computed fresh from the likes and comments tables.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

// Delete removes the post and cascades to its comments and likes in a
// single transaction so the store never holds orphaned child rows.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) GetLikedPostIDs(ctx context.Context, userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likedPostIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedPostIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likedPostIDs, nil
}

// ToggleLike flips the like state for (postID, userID) with a single atomic
// conditional write. The insert is guarded by the (post_id, user_id) unique
// index via ON CONFLICT DO NOTHING: one affected row means this call liked
// the post; zero rows means a like already existed and this call removes it.
// There is never an existence check followed by a separate write, so two
// concurrent toggles by the same actor cannot both insert. If the delete
// side finds nothing (the row vanished under a concurrent toggle) the
// insert is retried once before giving up with a conflict.
func (r *postRepository) ToggleLike(ctx context.Context, postID, userID uint) (bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		res := r.db.WithContext(ctx).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
				DoNothing: true,
			}).
			Create(&models.Like{PostID: postID, UserID: userID})
		if res.Error != nil {
			return false, models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 1 {
			cache.InvalidatePost(ctx, postID)
			observability.LikeToggles.WithLabelValues("liked").Inc()
			return true, nil
		}

		// A like row already exists, so this toggle removes it. Hard delete:
		// a lingering row would block the next insert through the unique index.
		del := r.db.WithContext(ctx).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Like{})
		if del.Error != nil {
			return false, models.NewInternalError(del.Error)
		}
		if del.RowsAffected > 0 {
			cache.InvalidatePost(ctx, postID)
			observability.LikeToggles.WithLabelValues("unliked").Inc()
			return false, nil
		}

		// The row was deleted by a concurrent toggle between our insert and
		// delete. Retry the insert once.
		observability.ToggleRetries.WithLabelValues("like").Inc()
	}

	return false, models.NewConflictError("Like toggle lost a concurrent race")
}
