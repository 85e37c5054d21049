package scheduleRoutes

import (
	controllers "aula/controllers/schedule"
	"aula/middleware"
	"aula/models"
	validators "aula/validators/schedule"

	"github.com/gofiber/fiber/v2"
)

// SetupScheduleRoutes wires the shared class schedule. Writes are teacher-only
// but not restricted to the course's own teacher.
func SetupScheduleRoutes(app *fiber.App) {
	scheduleGroup := app.Group("/api/schedule", middleware.JWTMiddleware)

	scheduleGroup.Get("/", controllers.GetAllEvents)
	scheduleGroup.Post("/", middleware.RequireRoles(models.RoleDocente), validators.Event(), controllers.CreateEvent)
	scheduleGroup.Put("/:id", middleware.RequireRoles(models.RoleDocente), validators.Event(), controllers.UpdateEvent)
	scheduleGroup.Delete("/:id", middleware.RequireRoles(models.RoleDocente), controllers.DeleteEvent)
}
