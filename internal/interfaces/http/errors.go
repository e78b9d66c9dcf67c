package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
)

// respondDomainError mapea errores de dominio a HTTP: NotFound -> 404,
// Conflict -> 409, Validation -> 400; cualquier otro error es 500 sin
// filtrar detalles internos al cliente.
func respondDomainError(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		status := fiber.StatusInternalServerError
		code := "INTERNAL"
		switch derr.Kind {
		case domain.KindNotFound:
			status = fiber.StatusNotFound
			code = "NOT_FOUND"
		case domain.KindConflict:
			status = fiber.StatusConflict
			code = "CONFLICT"
		case domain.KindValidation:
			status = fiber.StatusBadRequest
			code = "VALIDATION"
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:    code,
			Rule:    string(derr.Rule),
			Message: derr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno",
	})
}
