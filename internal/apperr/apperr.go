package apperr

import (
	"errors"
	"net/http"
)

// Sentinel errors for the notification core. Handlers map these to HTTP
// status codes with errors.Is; usecases wrap them with context via fmt.Errorf.
var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedEvent indicates an event kind with no notification plan.
	ErrUnsupportedEvent = errors.New("unsupported event kind")

	// ErrUnsupportedTarget indicates an unknown recipient targeting mode.
	ErrUnsupportedTarget = errors.New("unsupported target mode")

	// ErrUnauthorized indicates a bad or missing credential or cron secret.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrGateway indicates a push gateway failure. Never retried here:
	// stale tokens self-correct via re-registration.
	ErrGateway = errors.New("push gateway error")
)

// HTTPStatus maps a usecase error to the response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUnsupportedEvent), errors.Is(err, ErrUnsupportedTarget):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrGateway):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
