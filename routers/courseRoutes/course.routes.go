package courseRoutes

import (
	controllers "aula/controllers/course"
	"aula/middleware"
	"aula/models"
	validators "aula/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the course catalogue, module creation and enrollment
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses", middleware.JWTMiddleware)

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Post("/", middleware.RequireRoles(models.RoleDocente), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", controllers.GetCourseDetails)
	courseGroup.Put("/:id", middleware.RequireRoles(models.RoleDocente), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.RequireRoles(models.RoleDocente), controllers.DeleteCourse)

	courseGroup.Post("/:courseId/modules", middleware.RequireRoles(models.RoleDocente), validators.CreateModule(), controllers.CreateModule)
	courseGroup.Post("/:id/enroll", middleware.RequireRoles(models.RoleEstudiante), controllers.EnrollInCourse)
}
