package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kar-app/kar-portal/internal/api/middleware"
	"github.com/kar-app/kar-portal/internal/core/domain"
)

func handleError(t *testing.T, target string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestErrorHandlerRedirectsExpiredAuthorization(t *testing.T) {
	rec := handleError(t, "/vehicles", &domain.StatusError{Code: http.StatusUnauthorized, Message: "jwt expired"})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != middleware.LoginPath {
		t.Fatalf("expected redirect to login, got %s", loc)
	}
}

func TestErrorHandlerNoRedirectLoopOnLoginView(t *testing.T) {
	rec := handleError(t, "/auth/login", &domain.StatusError{Code: http.StatusUnauthorized, Message: "Invalid credentials"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on the login view itself, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Invalid credentials" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandlerPassesBackendStatusThrough(t *testing.T) {
	rec := handleError(t, "/vehicles", &domain.StatusError{Code: http.StatusConflict, Message: "immatriculation already taken"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "immatriculation already taken" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandlerMapsAPIError(t *testing.T) {
	rec := handleError(t, "/vehicles", &domain.APIError{Message: "Failed to create vehicle"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "Failed to create vehicle" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandlerMapsNetworkError(t *testing.T) {
	rec := handleError(t, "/vehicles", &domain.NetworkError{Cause: errors.New("connection refused")})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "network error occurred" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	rec := handleError(t, "/vehicles", errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}

func TestErrorHandlerKeepsEchoErrors(t *testing.T) {
	rec := handleError(t, "/nope", echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
