package authController

import (
	"aula/config"
	"aula/database"
	"aula/middleware"
	"aula/models"
	"aula/utils"
	authValidator "aula/validators/auth"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account. Duplicate emails are rejected before hashing;
// the unique index on users.email backs this up at the storage layer.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ?", reqData.Email).First(&existing).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "El correo ya está registrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al registrar usuario")
	}

	user := models.User{
		Nombre:   reqData.Nombre,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Rol:      reqData.Rol,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error saving user: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al registrar usuario")
	}

	utils.SendWelcomeEmail(user.Email, user.Nombre)

	return c.Status(fiber.StatusCreated).JSON(user.Public())
}

// Login verifies credentials and issues a 12h JWT. Unknown email and wrong
// password produce the same response so neither field leaks.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Rol)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al iniciar sesión")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

// Logout is stateless: the server revokes nothing, the client discards the token.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Sesión finalizada. Elimina el token en el cliente.",
	})
}
