package courseController

import (
	"aula/database"
	"aula/middleware"
	"aula/models"
	courseValidator "aula/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateModule adds a module to a course owned by the caller. When orden is
// omitted the module is appended after the current count, not slotted into
// gaps left by deletions.
func CreateModule(c *fiber.Ctx) error {
	courseID, ok := parseID(c, "courseId")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}
	course := loadOwnedCourse(c, courseID)
	if course == nil {
		return nil
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	orden := 0
	if reqData.Orden != nil {
		orden = *reqData.Orden
	} else {
		var count int64
		if err := database.Database.Db.Model(&models.Module{}).Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
			log.Printf("Error counting modules for course %d: %v", course.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al crear módulo")
		}
		orden = int(count) + 1
	}

	module := models.Module{
		Titulo:      reqData.Titulo,
		Descripcion: reqData.Descripcion,
		Orden:       orden,
		CourseID:    course.ID,
	}
	if reqData.DuracionEstimada != "" {
		module.DuracionEstimada = &reqData.DuracionEstimada
	}
	if reqData.VideoURL != "" {
		module.VideoURL = &reqData.VideoURL
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al crear módulo")
	}

	return c.Status(fiber.StatusCreated).JSON(module)
}

// loadOwnedModule fetches a module and enforces ownership transitively
// through the parent course's docenteId.
func loadOwnedModule(c *fiber.Ctx, id uint) *models.Module {
	db := database.Database.Db

	var module models.Module
	if err := db.First(&module, id).Error; err != nil {
		_ = middleware.ErrorResponse(c, fiber.StatusNotFound, "Módulo no encontrado")
		return nil
	}

	var course models.Course
	if err := db.First(&course, module.CourseID).Error; err != nil {
		_ = middleware.ErrorResponse(c, fiber.StatusNotFound, "Módulo no encontrado")
		return nil
	}
	if course.DocenteID != middleware.CurrentUser(c).ID {
		_ = middleware.ErrorResponse(c, fiber.StatusForbidden, "No puedes modificar módulos de otros docentes")
		return nil
	}
	return &module
}

// UpdateModule partially edits a module; absent fields keep their value and
// an explicit empty string clears the optional ones.
func UpdateModule(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}
	module := loadOwnedModule(c, id)
	if module == nil {
		return nil
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*courseValidator.ModuleUpdateRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if reqData.Titulo != nil {
		module.Titulo = *reqData.Titulo
	}
	if reqData.Descripcion != nil {
		module.Descripcion = *reqData.Descripcion
	}
	if reqData.DuracionEstimada != nil {
		if *reqData.DuracionEstimada == "" {
			module.DuracionEstimada = nil
		} else {
			module.DuracionEstimada = reqData.DuracionEstimada
		}
	}
	if reqData.VideoURL != nil {
		if *reqData.VideoURL == "" {
			module.VideoURL = nil
		} else {
			module.VideoURL = reqData.VideoURL
		}
	}
	if reqData.Orden != nil {
		module.Orden = *reqData.Orden
	}

	if err := database.Database.Db.Save(module).Error; err != nil {
		log.Printf("Error updating module %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al actualizar módulo")
	}
	return c.JSON(module)
}

// DeleteModule removes a module and its progress rows in one transaction
func DeleteModule(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}
	module := loadOwnedModule(c, id)
	if module == nil {
		return nil
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", module.ID).Delete(&models.ModuleProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Module{}, module.ID).Error
	})
	if err != nil {
		log.Printf("Error deleting module %d: %v", id, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al eliminar módulo")
	}

	return c.JSON(fiber.Map{"message": "Módulo eliminado"})
}
