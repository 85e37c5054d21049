package courseController

import (
	"aula/database"
	"aula/middleware"
	"aula/models"
	"aula/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse registers the authenticated student in a course. The
// friendly duplicate check runs first; the composite unique index catches the
// race where two concurrent enrolls pass it.
func EnrollInCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, ok := parseID(c, "id")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error
	if err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Ya estás inscripto en este curso")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error checking enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al inscribirse al curso")
	}

	enrollment := models.Enrollment{UserID: user.ID, CourseID: course.ID}
	if err := db.Create(&enrollment).Error; err != nil {
		// Unique index violation from a concurrent duplicate enroll.
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Ya estás inscripto en este curso")
	}

	utils.SendEnrollmentEmail(user.Email, user.Nombre, course.Titulo)

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}
