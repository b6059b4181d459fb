package server

import (
	"fitpoint/internal/models"
	"fitpoint/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CalculateCalories handles POST /api/calories/calculate.
// The body may supply any subset of the biometric inputs; omitted fields
// fall back to the caller's stored profile.
func (s *Server) CalculateCalories(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req service.CalculateInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	plan, err := s.nutritionService.Calculate(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(plan)
}
