package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/dto"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
	"github.com/vinherch/warehouse-zhaw-backend/pkg/logger"
)

type errorMapping struct {
	sentinel error
	status   int
	code     string
}

var errorMappings = []errorMapping{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrAlreadyExists, fiber.StatusBadRequest, "ALREADY_EXISTS"},
	{domain.ErrInvalidFormat, fiber.StatusBadRequest, "INVALID_FORMAT"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrInvalidCSV, fiber.StatusBadRequest, "INVALID_CSV"},
	{domain.ErrNoArticlesForOrder, fiber.StatusBadRequest, "NO_ARTICLES"},
}

// ErrorHandler traduce los errores devueltos por los handlers a dto.ErrorResponse y los registra una vez.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		status, body := mapError(err)

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Interface("request_id", c.Locals(requestid.ConfigDefault.ContextKey)).
			Msg("petición fallida")

		return c.Status(status).JSON(body)
	}
}

func mapError(err error) (int, dto.ErrorResponse) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m.status, dto.ErrorResponse{Code: m.code, Message: publicMessage(err, m.sentinel)}
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"}
}

// publicMessage quita el prefijo del sentinel: "recurso no encontrado: Article does not exist..." -> "Article does not exist...".
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
