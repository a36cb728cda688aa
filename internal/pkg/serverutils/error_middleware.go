package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"college-chatbot-be/pkg/faq"
)

// ErrorHandlerMiddleware maps service errors onto the JSON envelope.
// Validation failures are recoverable 400s; a broken FAQ sheet is reported
// as an upstream failure with the discovered columns; anything else is a
// plain 500 carrying the error message, matching the original's behavior
// of surfacing the underlying error to the user.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error()))
		}

		var schemaErr *faq.SchemaError
		if errors.As(err, &schemaErr) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, schemaErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
