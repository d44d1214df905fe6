package handlers

import (
	"errors"
	"net/http"

	"carrental/internal/domain"
	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Message:   message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsInvalidCredentials(err):
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusForbidden, "unauthorized", "Unauthorized")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", conflictMessage(err))
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "Username already exists."
	case errors.Is(err, domain.ErrCarUnavailable):
		return "Car is not available."
	case errors.Is(err, domain.ErrAlreadyPaid):
		return "Rental has already been paid."
	}
	return err.Error()
}
