package progressController

import (
	"aula/database"
	"aula/middleware"
	"aula/models"
	"errors"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseProgress is the per-course slice of a student's progress summary
type CourseProgress struct {
	CursoID      uint   `json:"cursoId"`
	CursoTitulo  string `json:"cursoTitulo"`
	TotalModulos int    `json:"totalModulos"`
	Completados  int    `json:"completados"`
	Porcentaje   int    `json:"porcentaje"`
}

// ProgressSummary aggregates CourseProgress across all enrolled courses
type ProgressSummary struct {
	Cursos  []CourseProgress `json:"cursos"`
	Resumen struct {
		TotalCursos       int `json:"totalCursos"`
		TotalModulos      int `json:"totalModulos"`
		Completados       int `json:"completados"`
		PorcentajeGeneral int `json:"porcentajeGeneral"`
	} `json:"resumen"`
}

// CompleteModule marks a module completed for the authenticated student.
// Re-completing is not an error: the row is reused and the timestamp
// refreshed.
func CompleteModule(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	db := database.Database.Db

	var module models.Module
	if err := db.First(&module, id).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Módulo no encontrado")
	}

	var progress models.ModuleProgress
	err = db.Where("user_id = ? AND module_id = ?", user.ID, module.ID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.ModuleProgress{
			UserID:   user.ID,
			ModuleID: module.ID,
			Estado:   models.EstadoPendiente,
		}
		if err := db.Create(&progress).Error; err != nil {
			log.Printf("Error creating progress row: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al actualizar progreso")
		}
	} else if err != nil {
		log.Printf("Error loading progress row: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al actualizar progreso")
	}

	now := time.Now()
	progress.Estado = models.EstadoCompletado
	progress.FechaCompletado = &now
	if err := db.Save(&progress).Error; err != nil {
		log.Printf("Error saving progress row: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al actualizar progreso")
	}

	return c.JSON(progress)
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// MyProgress computes the per-course and overall completion summary for the
// authenticated student. Non-student callers get an all-zero summary, not an
// error, so the dashboard renders the same shape for every role.
func MyProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	summary := ProgressSummary{Cursos: []CourseProgress{}}
	if user.Rol != models.RoleEstudiante {
		return c.JSON(summary)
	}

	db := database.Database.Db

	var courseIDs []uint
	if err := db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Pluck("course_id", &courseIDs).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener progreso")
	}

	var courses []models.Course
	if len(courseIDs) > 0 {
		err := db.Where("id IN ?", courseIDs).Preload("Modulos").Find(&courses).Error
		if err != nil {
			log.Printf("Error fetching enrolled courses: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener progreso")
		}
	}

	var progressRows []models.ModuleProgress
	if err := db.Where("user_id = ?", user.ID).Find(&progressRows).Error; err != nil {
		log.Printf("Error fetching progress rows: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener progreso")
	}
	completedModules := make(map[uint]bool, len(progressRows))
	for _, row := range progressRows {
		if row.Estado == models.EstadoCompletado {
			completedModules[row.ModuleID] = true
		}
	}

	for _, course := range courses {
		completed := 0
		for _, module := range course.Modulos {
			if completedModules[module.ID] {
				completed++
			}
		}
		total := len(course.Modulos)
		summary.Cursos = append(summary.Cursos, CourseProgress{
			CursoID:      course.ID,
			CursoTitulo:  course.Titulo,
			TotalModulos: total,
			Completados:  completed,
			Porcentaje:   percentage(completed, total),
		})
		summary.Resumen.TotalModulos += total
		summary.Resumen.Completados += completed
	}
	summary.Resumen.TotalCursos = len(summary.Cursos)
	summary.Resumen.PorcentajeGeneral = percentage(summary.Resumen.Completados, summary.Resumen.TotalModulos)

	return c.JSON(summary)
}
