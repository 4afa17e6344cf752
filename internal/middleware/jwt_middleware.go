package middleware

import (
	"strings"

	"sportsstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that rejects requests without a valid
// bearer token. Every failure produces the same 401 body: the reason a token
// was rejected is logged by the auth service, never sent to the caller.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return unauthorized(c)
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c)
		}

		// Store claims in the Fiber context for subsequent handlers
		c.Locals("username", claims["sub"])
		c.Locals("roles", services.TokenRoles(claims))

		return c.Next()
	}
}

// RoleRequired gates an operation behind a role claim. It must run after
// AuthRequired. A valid token lacking the role yields 403, distinct from
// the 401 an invalid token yields.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, _ := c.Locals("roles").([]string)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient privileges",
		})
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid or missing credentials",
	})
}
