package server

import (
	"fmt"
	"net/http"
	"testing"

	"fitpoint/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	srv, app, db := newTestServer(t)
	_, authorToken := createUserWithToken(t, srv, db, "author")
	_, fanToken := createUserWithToken(t, srv, db, "fan")

	var post models.Post
	resp := doJSON(t, app, http.MethodPost, "/api/posts", authorToken, map[string]string{"content": "leg day"}, &post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	commentsURL := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	t.Run("success", func(t *testing.T) {
		var comment models.Comment
		resp := doJSON(t, app, http.MethodPost, commentsURL, fanToken, map[string]string{
			"content": "what was the top set?",
		}, &comment)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "what was the top set?", comment.Content)
		assert.Equal(t, "fan", comment.User.Username)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, commentsURL, fanToken, map[string]string{"content": " "}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		er := decodeError(t, resp)
		assert.Equal(t, models.CodeValidation, er.Code)
	})

	t.Run("missing post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/posts/9999/comments", fanToken, map[string]string{"content": "hello"}, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetComments(t *testing.T) {
	srv, app, db := newTestServer(t)
	_, authorToken := createUserWithToken(t, srv, db, "author")

	var post models.Post
	resp := doJSON(t, app, http.MethodPost, "/api/posts", authorToken, map[string]string{"content": "rest day"}, &post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	commentsURL := fmt.Sprintf("/api/posts/%d/comments", post.ID)
	for _, content := range []string{"first", "second", "third"} {
		resp := doJSON(t, app, http.MethodPost, commentsURL, authorToken, map[string]string{"content": content}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var comments []models.Comment
	resp = doJSON(t, app, http.MethodGet, commentsURL, "", nil, &comments)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, comments, 3)

	// oldest first
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "third", comments[2].Content)

	// counters reflect the thread
	var fetched models.Post
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil, &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, fetched.CommentsCount)
}

func TestDeleteComment(t *testing.T) {
	srv, app, db := newTestServer(t)
	_, authorToken := createUserWithToken(t, srv, db, "author")
	_, strangerToken := createUserWithToken(t, srv, db, "stranger")

	var post models.Post
	resp := doJSON(t, app, http.MethodPost, "/api/posts", authorToken, map[string]string{"content": "post"}, &post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var comment models.Comment
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), authorToken,
		map[string]string{"content": "my own note"}, &comment)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	deleteURL := fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID)

	resp = doJSON(t, app, http.MethodDelete, deleteURL, strangerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, deleteURL, authorToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, deleteURL, authorToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
