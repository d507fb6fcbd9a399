package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/domain"
)

// validate instancia compartida del validador de structs. Las reglas viven en
// los tags `validate` de los DTOs; la validación corre antes de tocar el
// caso de uso.
var validate = validator.New()

// validationMessage arma un mensaje legible a partir de los errores de campo.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "entrada inválida"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s es requerido", fe.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s debe ser mayor que %s", fe.Field(), fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s no es un email válido", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s no cumple la regla %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// badRequest responde 400 con el código y mensaje indicados.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// notFound responde 404 con el mensaje indicado.
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

// serviceError traduce errores del caso de uso: una referencia cruzada no
// resuelta responde 404 con código propio; el resto es un 500 genérico.
func serviceError(c *fiber.Ctx, err error) error {
	var ref *domain.EntityNotFoundError
	if errors.As(err, &ref) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "REFERENCE_NOT_FOUND",
			Message: ref.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: err.Error(),
	})
}
