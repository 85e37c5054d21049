package userRoutes

import (
	progressControllers "aula/controllers/progress"
	userControllers "aula/controllers/user"
	"aula/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes wires the role-dependent per-user views
func SetupUserRoutes(app *fiber.App) {
	app.Get("/api/my-courses", middleware.JWTMiddleware, userControllers.MyCourses)
	app.Get("/api/my-progress", middleware.JWTMiddleware, progressControllers.MyProgress)
}
