package courseValidator

import (
	"aula/middleware"
	"aula/models"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest is the validated payload for creating or updating a course
type CourseRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=3"`
	Descripcion string `json:"descripcion" validate:"required,min=5"`
	Nivel       string `json:"nivel" validate:"omitempty,oneof=Inicial Intermedio Avanzado"`
}

// ModuleRequest is the validated payload for creating a module. Orden is
// optional; the controller appends after the current module count when nil.
type ModuleRequest struct {
	Titulo           string `json:"titulo" validate:"required,min=3"`
	Descripcion      string `json:"descripcion" validate:"required,min=5"`
	DuracionEstimada string `json:"duracionEstimada"`
	VideoURL         string `json:"videoUrl" validate:"omitempty,url"`
	Orden            *int   `json:"orden" validate:"omitempty,min=1"`
}

// ModuleUpdateRequest allows partial updates; empty fields keep the stored value.
type ModuleUpdateRequest struct {
	Titulo           *string `json:"titulo" validate:"omitempty,min=3"`
	Descripcion      *string `json:"descripcion" validate:"omitempty,min=5"`
	DuracionEstimada *string `json:"duracionEstimada"`
	VideoURL         *string `json:"videoUrl"`
	Orden            *int    `json:"orden" validate:"omitempty,min=1"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		reqData.Titulo = strings.TrimSpace(reqData.Titulo)
		reqData.Descripcion = strings.TrimSpace(reqData.Descripcion)
		if reqData.Nivel == "" {
			reqData.Nivel = models.NivelInicial
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse shares the create shape; nivel stays optional
func UpdateCourse() fiber.Handler {
	return CreateCourse()
}

// CreateModule validator middleware
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		reqData.Titulo = strings.TrimSpace(reqData.Titulo)
		reqData.Descripcion = strings.TrimSpace(reqData.Descripcion)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validator middleware
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedModuleUpdate", reqData)
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
