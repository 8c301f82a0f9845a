package gameclient

import "fmt"

// RequestError wraps any failure of a client operation with the user-facing
// action name, so callers can render "Failed to <action>" without parsing
// the underlying cause.
type RequestError struct {
	Action string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("gameclient: %s: %v", e.Action, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// HTTPError represents a non-2xx response whose body was not a structured
// API error.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("gameclient: HTTP %d: %s", e.StatusCode, e.Body)
}

// IsServerError returns true for 5xx responses.
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500
}

// APIError is a structured error from the game service, carried in a
// {"detail": "..."} body.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gameclient: HTTP %d: %s", e.StatusCode, e.Detail)
}

// IsNotFound returns true if the session is unknown to the service
// (expired or already ended).
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsIllegalAction returns true if the service rejected the action for the
// current game position.
func (e *APIError) IsIllegalAction() bool {
	return e.StatusCode == 400
}
