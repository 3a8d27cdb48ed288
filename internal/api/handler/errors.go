package handler

import (
	"net/http"

	"github.com/velmark/screenhunt/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewEventClosedError creates an event-window error
func NewEventClosedError() error {
	return apierr.NewEventClosedError()
}

// NewPlayerDisqualifiedError creates a disqualified-player error
func NewPlayerDisqualifiedError() error {
	return apierr.NewPlayerDisqualifiedError()
}
