package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorResponse writes the API error shape: a status code plus a
// human-readable message. Entity payloads are serialized directly by the
// controllers; only failures go through here.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"message": message,
	})
}

// ValidationErrorResponse reports per-field validation failures.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Datos inválidos",
		"errores": errors,
	})
}

// RequestID tags every request with an X-Request-ID for log correlation,
// keeping an incoming id when the client already set one.
func RequestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("X-Request-ID", id)
	c.Locals("reqid", id)
	return c.Next()
}
