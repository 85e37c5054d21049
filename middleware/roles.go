package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that rejects users whose role is not in
// the given set. Runs after JWTMiddleware, so a missing user means the auth
// chain was miswired rather than a bad credential.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "No autenticado")
		}

		for _, rol := range roles {
			if user.Rol == rol {
				return c.Next()
			}
		}
		return ErrorResponse(c, fiber.StatusForbidden, "No tienes permisos suficientes")
	}
}
