package courseController

import (
	"aula/database"
	"aula/middleware"
	"aula/models"
	courseValidator "aula/validators/course"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// GetAllCourses lists every course with its teacher summary, newest first
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Preload("Docente").
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener cursos")
	}
	return c.JSON(courses)
}

// CreateCourse persists a new course owned by the authenticated teacher
func CreateCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	course := models.Course{
		Titulo:      reqData.Titulo,
		Descripcion: reqData.Descripcion,
		Nivel:       reqData.Nivel,
		DocenteID:   user.ID,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al crear curso")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

// GetCourseDetails returns a course with its modules ascending by orden
func GetCourseDetails(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	var course models.Course
	err := database.Database.Db.
		Preload("Docente").
		Preload("Modulos", func(db *gorm.DB) *gorm.DB {
			return db.Order("orden asc")
		}).
		First(&course, id).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
	}
	return c.JSON(course)
}

// loadOwnedCourse fetches a course and enforces that the caller created it.
// Returns a nil course after writing the error response.
func loadOwnedCourse(c *fiber.Ctx, id uint) *models.Course {
	var course models.Course
	if err := database.Database.Db.First(&course, id).Error; err != nil {
		_ = middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
		return nil
	}
	if course.DocenteID != middleware.CurrentUser(c).ID {
		_ = middleware.ErrorResponse(c, fiber.StatusForbidden, "Solo el docente creador puede modificar este curso")
		return nil
	}
	return &course
}

// UpdateCourse edits a course owned by the caller
func UpdateCourse(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}
	course := loadOwnedCourse(c, id)
	if course == nil {
		return nil
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	course.Titulo = reqData.Titulo
	course.Descripcion = reqData.Descripcion
	course.Nivel = reqData.Nivel
	if err := database.Database.Db.Save(course).Error; err != nil {
		log.Printf("Error updating course %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al actualizar curso")
	}
	return c.JSON(course)
}

// DeleteCourse removes a course and cascades to its modules, their progress
// rows and the course's enrollments; schedule events keep existing with a
// cleared course reference. One transaction, no partial deletes.
func DeleteCourse(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}
	course := loadOwnedCourse(c, id)
	if course == nil {
		return nil
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uint
		if err := tx.Model(&models.Module{}).Where("course_id = ?", course.ID).Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}
		if len(moduleIDs) > 0 {
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&models.ModuleProgress{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", course.ID).Delete(&models.Module{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ScheduleEvent{}).Where("course_id = ?", course.ID).Update("course_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, course.ID).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al eliminar curso")
	}

	return c.JSON(fiber.Map{"message": "Curso eliminado"})
}
