package serverutils

import (
	"errors"

	"my-diary-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors to HTTP statuses. Handlers and
// services just return errors; this is the single place they become
// responses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var notFound *apperror.NotFoundError
		var generation *apperror.GenerationError
		var persistence *apperror.PersistenceError
		var busy *apperror.ConversationBusyError
		var conflict *apperror.ConflictError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &notFound):
			status = fiber.StatusNotFound
			message = notFound.Error()
		case errors.As(err, &generation):
			status = fiber.StatusBadGateway
			message = generation.Error()
		case errors.As(err, &busy):
			status = fiber.StatusConflict
			message = busy.Error()
		case errors.As(err, &conflict):
			status = fiber.StatusConflict
			message = conflict.Error()
		case errors.As(err, &persistence):
			status = fiber.StatusInternalServerError
			message = "storage failure"
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(status).JSON(ErrorBody{
			Success: false,
			Message: message,
		})
	}
}
