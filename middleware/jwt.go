package middleware

import (
	"aula/config"
	"aula/database"
	"aula/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT issues a signed 12h credential for the user. Only the id claim
// is ever used server-side; the role is re-read from the database on each
// request so a role change invalidates stale tokens immediately.
func GenerateJWT(userID uint, rol string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID,
		"rol": rol,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(12 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// JWTMiddleware validates the bearer token and loads the current user record
// into c.Locals("user"). Missing/invalid tokens and deleted users all yield 401.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token no proporcionado")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Cabecera Authorization inválida")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}
	userID := uint(claims["id"].(float64))

	// Always resolve the live record; never trust token fields for authorization.
	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}

	c.Locals("user", &user)
	return c.Next()
}

// CurrentUser returns the authenticated user stored by JWTMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
