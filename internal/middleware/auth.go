package middleware

import (
	"strings"

	"github.com/MathavanSG/FitnessTrackerAPI/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired verifies the bearer access token and stores its subject in
// c.Locals("username").
func AuthRequired(secret string) fiber.Handler {
	return requireToken(secret, utils.TokenTypeAccess, "Invalid or missing token")
}

// RefreshRequired is the same gate for the refresh token, used only by the
// token-refresh endpoint.
func RefreshRequired(secret string) fiber.Handler {
	return requireToken(secret, utils.TokenTypeRefresh, "Please provide a valid refresh token")
}

func requireToken(secret, tokenType, failureMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": failureMessage,
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(parts[1], tokenType, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": failureMessage,
			})
		}

		c.Locals("username", claims.Subject)

		return c.Next()
	}
}
