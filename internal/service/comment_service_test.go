package service

import (
	"context"
	"strings"
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]*models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateCommentInput
	}{
		{name: "empty content", input: CreateCommentInput{UserID: 1, PostID: 1}},
		{name: "whitespace-only content", input: CreateCommentInput{UserID: 1, PostID: 1, Content: "  \t "}},
		{name: "content too long", input: CreateCommentInput{UserID: 1, PostID: 1, Content: strings.Repeat("x", 1001)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateComment(ctx, tc.input)
			assertValidationError(t, err)
		})
	}
}

func TestCommentService_CreateComment_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	created := false
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		created = true
		return nil
	}
	svc := NewCommentService(commentRepo, postRepo)

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 404, Content: "hello"})
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	assert.False(t, created, "no comment row may be written for a missing post")
}

func TestCommentService_CreateComment_TrimsContent(t *testing.T) {
	t.Parallel()

	var stored *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 3
		stored = c
		return nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 2, Content: "  great form!  "})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "great form!", stored.Content)
	assert.Equal(t, uint(2), comment.PostID)
}

func TestCommentService_ListComments_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewCommentService(noopCommentRepo(), postRepo)

	_, err := svc.ListComments(context.Background(), 404, 10, 0, 0)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestCommentService_DeleteComment_Ownership(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 10}, nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo())

	err := svc.DeleteComment(context.Background(), 1, 5)
	assertUnauthorizedError(t, err)

	err = svc.DeleteComment(context.Background(), 10, 5)
	assert.NoError(t, err)
}
