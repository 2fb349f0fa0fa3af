package domain

import (
	"fmt"
	"net/http"
)

// ErrNetwork marks transport-level failures: the request never reached the
// backend or no envelope could be parsed from the response.
var ErrNetwork = &NetworkError{}

// NetworkError wraps the underlying transport failure. All instances match
// ErrNetwork through errors.Is.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string { return "network error occurred" }

func (e *NetworkError) Unwrap() error { return e.Cause }

func (e *NetworkError) Is(target error) bool {
	_, ok := target.(*NetworkError)
	return ok
}

// StatusError reports a non-success HTTP status from the backend, carrying
// the server-supplied message when the envelope had one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// Unauthorized reports whether this failure was an authorization expiry.
func (e *StatusError) Unauthorized() bool { return e.Code == http.StatusUnauthorized }

// APIError is an application-level failure: the backend answered with a
// success HTTP status but success=false in the envelope.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }
