package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeatureFlags returns the evaluated feature flags for the
// authenticated user so clients can gate their own behavior.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return c.JSON(s.flags.Snapshot(userID))
}
