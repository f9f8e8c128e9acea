package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/internal/store"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps store errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrDriverNotFound),
		errors.Is(err, store.ErrRideNotFound):
		return http.StatusNotFound

	// Authentication
	case errors.Is(err, store.ErrInvalidCredentials),
		errors.Is(err, store.ErrNotAuthenticated):
		return http.StatusUnauthorized

	// Validation - Bad Request
	case errors.Is(err, store.ErrInvalidUserID),
		errors.Is(err, store.ErrInvalidDriverID),
		errors.Is(err, store.ErrInvalidRideID),
		errors.Is(err, store.ErrInvalidRating),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidActor),
		errors.Is(err, store.ErrInvalidAmount),
		errors.Is(err, store.ErrInvalidPaymentMethod):
		return http.StatusBadRequest

	// Conflicts: failed lifecycle guards and duplicate registration
	case errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrRideNotRequested),
		errors.Is(err, store.ErrRideNotAccepted),
		errors.Is(err, store.ErrRideNotStarted),
		errors.Is(err, store.ErrRideNotCompleted),
		errors.Is(err, store.ErrRideNotCancellable):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
