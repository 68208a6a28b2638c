package middleware

import (
	"quizpages/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateDocumentIDParam validates the :id path parameter as a store
// document identifier before the handler runs
func (vm *ValidationMiddleware) ValidateDocumentIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		documentID := c.Params("id")

		if errors := vm.validator.ValidateDocumentID(documentID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		return c.Next()
	}
}

// ValidateAttemptIDParam validates the :id path parameter as an attempt
// identifier before the handler runs
func (vm *ValidationMiddleware) ValidateAttemptIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		attemptID := c.Params("id")

		if errors := vm.validator.ValidateAttemptID(attemptID); len(errors) > 0 {
			return errors
		}

		return c.Next()
	}
}
