package moduleRoutes

import (
	courseControllers "aula/controllers/course"
	progressControllers "aula/controllers/progress"
	"aula/middleware"
	"aula/models"
	validators "aula/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupModuleRoutes wires module editing (teacher) and completion (student)
func SetupModuleRoutes(app *fiber.App) {
	moduleGroup := app.Group("/api/modules", middleware.JWTMiddleware)

	moduleGroup.Put("/:id", middleware.RequireRoles(models.RoleDocente), validators.UpdateModule(), courseControllers.UpdateModule)
	moduleGroup.Delete("/:id", middleware.RequireRoles(models.RoleDocente), courseControllers.DeleteModule)
	moduleGroup.Post("/:id/complete", middleware.RequireRoles(models.RoleEstudiante), progressControllers.CompleteModule)
}
