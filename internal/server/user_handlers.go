package server

import (
	"fitpoint/internal/models"
	"fitpoint/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(c.Context(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Bio           *string  `json:"bio"`
		Avatar        *string  `json:"avatar"`
		Age           *int     `json:"age"`
		Gender        *string  `json:"gender"`
		HeightCm      *float64 `json:"height_cm"`
		WeightKg      *float64 `json:"weight_kg"`
		ActivityLevel *string  `json:"activity_level"`
		Goal          *string  `json:"goal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:        userID,
		Bio:           req.Bio,
		Avatar:        req.Avatar,
		Age:           req.Age,
		Gender:        req.Gender,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.userService.GetProfile(c.Context(), userID, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}
