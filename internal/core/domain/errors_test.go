package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestNetworkErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("gateway: %w", &NetworkError{Cause: errors.New("connection refused")})
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected wrapped network error to match sentinel")
	}
	if msg := (&NetworkError{Cause: errors.New("whatever")}).Error(); msg != "network error occurred" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestStatusErrorMessageFallback(t *testing.T) {
	withMessage := &StatusError{Code: 422, Message: "immatriculation already taken"}
	if withMessage.Error() != "immatriculation already taken" {
		t.Fatalf("expected server message, got %q", withMessage.Error())
	}

	bare := &StatusError{Code: 500}
	if bare.Error() != "HTTP error! status: 500" {
		t.Fatalf("unexpected fallback %q", bare.Error())
	}

	if !(&StatusError{Code: 401}).Unauthorized() {
		t.Fatalf("401 should report unauthorized")
	}
	if (&StatusError{Code: 403}).Unauthorized() {
		t.Fatalf("403 is not an authorization expiry")
	}
}

func TestEnvelopeErrFallback(t *testing.T) {
	env := &Envelope{Success: false, Message: "Invalid credentials"}
	if err := env.Err("Login failed"); err.Error() != "Invalid credentials" {
		t.Fatalf("expected envelope message, got %q", err.Error())
	}

	blank := &Envelope{Success: false}
	if err := blank.Err("Login failed"); err.Error() != "Login failed" {
		t.Fatalf("expected fallback, got %q", err.Error())
	}

	var apiErr *APIError
	if !errors.As(blank.Err("Login failed"), &apiErr) {
		t.Fatalf("envelope failures should surface as APIError")
	}
}
