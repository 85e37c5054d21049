package scheduleController

import (
	"aula/database"
	"aula/middleware"
	"aula/models"
	scheduleValidator "aula/validators/schedule"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// GetAllEvents lists schedule events ascending by start time with the parent
// course summary attached.
func GetAllEvents(c *fiber.Ctx) error {
	var events []models.ScheduleEvent
	err := database.Database.Db.
		Preload("Curso").
		Order("fecha_hora_inicio asc").
		Find(&events).Error
	if err != nil {
		log.Printf("Error fetching schedule: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al obtener agenda")
	}
	return c.JSON(events)
}

// CreateEvent adds a schedule event. Any teacher may schedule against any
// course; scheduling is shared, there is no per-course ownership here.
func CreateEvent(c *fiber.Ctx) error {
	reqData, times, ok := validatedEvent(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if reqData.CourseID != nil {
		var course models.Course
		if err := database.Database.Db.First(&course, *reqData.CourseID).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
		}
	}

	event := models.ScheduleEvent{
		Titulo:          reqData.Titulo,
		Descripcion:     reqData.Descripcion,
		FechaHoraInicio: times.Inicio,
		FechaHoraFin:    times.Fin,
		CourseID:        reqData.CourseID,
	}
	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Error creating event: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al crear evento")
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent edits an existing schedule event
func UpdateEvent(c *fiber.Ctx) error {
	event, done := loadEvent(c)
	if done {
		return nil
	}

	reqData, times, ok := validatedEvent(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	if reqData.CourseID != nil {
		var course models.Course
		if err := database.Database.Db.First(&course, *reqData.CourseID).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Curso no encontrado")
		}
	}

	event.Titulo = reqData.Titulo
	event.Descripcion = reqData.Descripcion
	event.FechaHoraInicio = times.Inicio
	event.FechaHoraFin = times.Fin
	event.CourseID = reqData.CourseID
	if err := database.Database.Db.Save(event).Error; err != nil {
		log.Printf("Error updating event %d: %v", event.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al actualizar evento")
	}
	return c.JSON(event)
}

// DeleteEvent removes an event
func DeleteEvent(c *fiber.Ctx) error {
	event, done := loadEvent(c)
	if done {
		return nil
	}

	if err := database.Database.Db.Delete(&models.ScheduleEvent{}, event.ID).Error; err != nil {
		log.Printf("Error deleting event %d: %v", event.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Error al eliminar evento")
	}
	return c.JSON(fiber.Map{"message": "Evento eliminado"})
}

func validatedEvent(c *fiber.Ctx) (*scheduleValidator.EventRequest, *scheduleValidator.EventTimes, bool) {
	reqData, ok := c.Locals("validatedEvent").(*scheduleValidator.EventRequest)
	if !ok {
		return nil, nil, false
	}
	times, ok := c.Locals("validatedEventTimes").(*scheduleValidator.EventTimes)
	if !ok {
		return nil, nil, false
	}
	return reqData, times, true
}

// loadEvent resolves :id to an event; done=true means an error response was
// already written.
func loadEvent(c *fiber.Ctx) (*models.ScheduleEvent, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		_ = middleware.ErrorResponse(c, fiber.StatusBadRequest, "Identificador inválido")
		return nil, true
	}

	var event models.ScheduleEvent
	if err := database.Database.Db.First(&event, id).Error; err != nil {
		_ = middleware.ErrorResponse(c, fiber.StatusNotFound, "Evento no encontrado")
		return nil, true
	}
	return &event, false
}
