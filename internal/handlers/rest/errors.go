package rest

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/solvault/solvault/internal/address"
	"github.com/solvault/solvault/internal/auth"
	"github.com/solvault/solvault/internal/pkg/validator"
	"github.com/solvault/solvault/internal/signing"
	"github.com/solvault/solvault/internal/token"
	"github.com/solvault/solvault/internal/transfer"
)

// errorResponse is the uniform failure body of every route.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// statusFromError maps domain failures onto HTTP statuses. Anything
// unmatched is a 500: the route owns no details about it.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, auth.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, address.ErrInvalidAddress),
		errors.Is(err, token.ErrUnknownToken),
		errors.Is(err, transfer.ErrInvalidAmount),
		errors.Is(err, validator.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, signing.ErrWalletNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the uniform error body with the status derived from err.
func fail(c *fiber.Ctx, err error) error {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal error"
	}

	return c.Status(status).JSON(errorResponse{
		Success: false,
		Error:   message,
	})
}
