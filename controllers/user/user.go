package userController

import (
	"aula/database"
	"aula/middleware"
	"aula/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MyCourses returns the role-dependent course list: a teacher sees the
// courses they created, a student the courses they enrolled in.
func MyCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	db := database.Database.Db

	modulesAsc := func(db *gorm.DB) *gorm.DB {
		return db.Order("orden asc")
	}

	if user.Rol == models.RoleDocente {
		var courses []models.Course
		err := db.
			Where("docente_id = ?", user.ID).
			Preload("Modulos", modulesAsc).
			Order("created_at desc").
			Find(&courses).Error
		if err != nil {
			log.Printf("Error fetching teacher courses: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener cursos del usuario")
		}
		return c.JSON(courses)
	}

	var courseIDs []uint
	if err := db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Pluck("course_id", &courseIDs).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener cursos del usuario")
	}

	courses := []models.Course{}
	if len(courseIDs) > 0 {
		err := db.
			Where("id IN ?", courseIDs).
			Preload("Docente").
			Preload("Modulos", modulesAsc).
			Order("created_at desc").
			Find(&courses).Error
		if err != nil {
			log.Printf("Error fetching enrolled courses: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener cursos del usuario")
		}
	}
	return c.JSON(courses)
}
