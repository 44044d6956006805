package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/master-auth-service/internal/application/dto"
	"github.com/jhoicas/master-auth-service/internal/domain/failure"
	"github.com/jhoicas/master-auth-service/pkg/logger"
)

const internalErrorBody = "Internal server error"

// writeFailure responde con el Outcome del Failure en texto plano.
func writeFailure(c *fiber.Ctx, f failure.Failure) error {
	out := ResolveFailure(f)
	return c.Status(out.Status).SendString(out.Body)
}

// writeError resuelve los Failure y trata cualquier otro error como falla interna:
// se registra completo y al cliente solo le llega un 500 genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var f failure.Failure
	if errors.As(err, &f) {
		return writeFailure(c, f)
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("request_id", c.Locals("requestid")).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).SendString(internalErrorBody)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler manejador de errores de Fiber: errores propios del framework (404 de
// ruta, 405, body demasiado grande) conservan su código; el resto es 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
