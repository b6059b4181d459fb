package server

import (
	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles POST /api/users/:id/follow
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	status, err := s.followService.ToggleFollow(c.Context(), userID, targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(status)
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	followers, err := s.followService.GetFollowers(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 50)

	following, err := s.followService.GetFollowing(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(following)
}
