package scheduleValidator

import (
	"aula/middleware"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EventRequest is the validated payload for creating or updating a schedule
// event. Timestamps arrive as strings and are parsed into EventTimes.
type EventRequest struct {
	Titulo          string `json:"titulo" validate:"required,min=3"`
	Descripcion     string `json:"descripcion"`
	FechaHoraInicio string `json:"fechaHoraInicio" validate:"required"`
	FechaHoraFin    string `json:"fechaHoraFin" validate:"required"`
	CourseID        *uint  `json:"courseId"`
}

// EventTimes carries the parsed timestamps alongside the raw request.
type EventTimes struct {
	Inicio time.Time
	Fin    time.Time
}

// Accepted timestamp layouts: RFC3339 from API clients, the short forms from
// the SPA's datetime-local inputs.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseEventTime(value string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Event validator middleware, shared by create and update
func Event() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EventRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		reqData.Titulo = strings.TrimSpace(reqData.Titulo)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		errors := make(map[string]string)
		times := new(EventTimes)
		var ok bool
		if times.Inicio, ok = parseEventTime(reqData.FechaHoraInicio); !ok {
			errors["fechaHoraInicio"] = "Fecha de inicio inválida"
		}
		if times.Fin, ok = parseEventTime(reqData.FechaHoraFin); !ok {
			errors["fechaHoraFin"] = "Fecha de fin inválida"
		}
		if len(errors) == 0 && times.Fin.Before(times.Inicio) {
			errors["fechaHoraFin"] = "La fecha de fin debe ser posterior al inicio"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEvent", reqData)
		c.Locals("validatedEventTimes", times)
		return c.Next()
	}
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Campo inválido: " + fe.Tag()
		}
	}
	return errors
}
