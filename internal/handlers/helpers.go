package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/heritage/internal/middleware"
	"github.com/example/heritage/internal/models"
	"github.com/example/heritage/internal/records"
)

// parseID reads the :id route parameter as a store identity.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// listScope picks the enumeration policy for a listing request. The default
// hides soft-deleted rows; include_deleted=true gives the unrestricted view.
func listScope(c *fiber.Ctx) func(*gorm.DB) *gorm.DB {
	if c.QueryBool("include_deleted") {
		return records.All
	}
	return records.Active
}

// requireUser resolves the acting user placed in context by AuthMiddleware.
func requireUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "acting user required")
	}
	return user, nil
}
