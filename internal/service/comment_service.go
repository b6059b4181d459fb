package service

import (
	"context"
	"strings"

	"fitpoint/internal/models"
	"fitpoint/internal/repository"
)

const maxCommentContentLen = 1000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentContentLen {
		return nil, models.NewValidationError("Content too long (max 1000 characters)")
	}

	// The parent post must exist; a comment on a deleted post is NOT_FOUND,
	// not a silent orphan row.
	if _, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int, currentUserID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, currentUserID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
