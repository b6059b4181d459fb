// Package service holds the application's business rules, between the
// HTTP handlers and the repositories.
package service

import (
	"context"
	"strings"

	"fitpoint/internal/cache"
	"fitpoint/internal/featureflags"
	"fitpoint/internal/models"
	"fitpoint/internal/repository"
)

const maxPostContentLen = 2000

// feedCachePageSize is the page size stored under the feed cache key.
// Smaller first-page requests are served by slicing the cached page, so
// the cache entry's shape never depends on which request warmed it.
const feedCachePageSize = 20

type PostService struct {
	postRepo repository.PostRepository
	flags    *featureflags.Manager
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// NewPostService builds the post service. flags may be nil, which leaves
// every flag at its default.
func NewPostService(postRepo repository.PostRepository, flags *featureflags.Manager) *PostService {
	return &PostService{postRepo: postRepo, flags: flags}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 2000 characters)")
	}

	post := &models.Post{
		Content:  content,
		ImageURL: strings.TrimSpace(in.ImageURL),
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// ListPosts assembles the feed. The anonymous rendering of the first page
// is served cache-aside; the viewer's own liked flags are layered on top
// afterwards, so one cached page serves every viewer. The feed_cache flag
// is an operational kill switch for the cached path.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	var posts []*models.Post
	var err error

	if in.Offset == 0 && in.Limit <= feedCachePageSize && !s.flags.Disabled("feed_cache") {
		err = cache.Aside(ctx, cache.FeedKey, &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, feedCachePageSize, 0, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		if len(posts) > in.Limit {
			posts = posts[:in.Limit]
		}

		if in.CurrentUserID != 0 && len(posts) > 0 {
			postIDs := make([]uint, len(posts))
			for i, p := range posts {
				postIDs[i] = p.ID
			}
			likedIDs, err := s.postRepo.GetLikedPostIDs(ctx, in.CurrentUserID, postIDs)
			if err != nil {
				return nil, err
			}
			likedMap := make(map[uint]bool, len(likedIDs))
			for _, id := range likedIDs {
				likedMap[id] = true
			}
			for _, p := range posts {
				p.Liked = likedMap[p.ID]
			}
		}
		return posts, nil
	}

	posts, err = s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}

	if post.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// ToggleLike flips the caller's like on a post and returns the post with
// fresh counters. Missing posts surface as NOT_FOUND before any write.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.ToggleLike(ctx, postID, userID); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, postID, userID)
}
