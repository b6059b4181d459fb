package server

import (
	"fitpoint/internal/models"
	"fitpoint/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Content  string `json:"content"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:   userID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	posts, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		Limit:         page.Limit,
		Offset:        page.Offset,
		CurrentUserID: viewerID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userIDParam, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	posts, err := s.postService.GetUserPosts(c.Context(), userIDParam, page.Limit, page.Offset, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// ToggleLike handles POST /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.ToggleLike(c.Context(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	message := "Post liked"
	if !post.Liked {
		message = "Post unliked"
	}
	return c.JSON(fiber.Map{
		"message":     message,
		"liked":       post.Liked,
		"likes_count": post.LikesCount,
	})
}
