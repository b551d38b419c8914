package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the transport's failure taxonomy. Callers match them
// with errors.Is; StatusError carries the concrete status and the server's
// reason text.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrUnavailable  = errors.New("server unavailable")
	ErrRequestSetup = errors.New("request setup failed")
)

// StatusError is returned when the server responded with a non-2xx status.
type StatusError struct {
	Status int
	Reason string
	Method string
	Path   string
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// Unwrap maps the status code onto the taxonomy sentinels so callers can
// branch with errors.Is without inspecting codes.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrServer
	default:
		return nil
	}
}

// Reason extracts the server-provided reason from err's chain, or "" when
// there is none. Used to build user-facing failure notifications.
func Reason(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Reason
	}
	return ""
}
