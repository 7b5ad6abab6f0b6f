package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/heritage/internal/config"
	"github.com/example/heritage/internal/models"
	"github.com/example/heritage/internal/utils"
)

const userContextKey = "currentUser"

// AuthMiddleware validates JWT tokens and loads the acting user into context.
// Every mutation downstream needs an attributable actor, so the full user row
// is resolved here once per request.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		userID, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusUnauthorized, "unknown user")
			}
			return err
		}

		c.Locals(userContextKey, &user)
		return c.Next()
	}
}

// CurrentUser extracts the acting user loaded by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	if user, ok := c.Locals(userContextKey).(*models.User); ok {
		return user, true
	}
	return nil, false
}
