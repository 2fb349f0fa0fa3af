package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/api/middleware"
	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
	"github.com/kar-app/kar-portal/internal/core/service"
	"github.com/kar-app/kar-portal/internal/infrastructure/db/memory"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func newAuthContext(t *testing.T, method, body string, auth ports.AuthService) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/auth", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/auth", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctrl := service.NewSessionController(memory.NewSessionStore(), auth)
	ctrl.Restore(req.Context())
	c.Set(middleware.ContextKeySession, ctrl)
	return c, rec
}

func TestAuthHandlerLogin(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(_ context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
			if creds.Email != "alice@kar.app" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			return &ports.AuthResult{
				User:  &domain.User{ID: "1", Username: "alice", Role: domain.RoleUser},
				Token: "T",
			}, nil
		},
	}

	c, rec := newAuthContext(t, http.MethodPost, `{"email":"alice@kar.app","password":"secret"}`, auth)
	if err := NewAuthHandler().Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["authenticated"] != true {
		t.Fatalf("expected authenticated response, got %v", body)
	}
	user, ok := body["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user block: %v", body["user"])
	}
}

func TestAuthHandlerLoginRejectsInvalidPayload(t *testing.T) {
	c, _ := newAuthContext(t, http.MethodPost, `{"password":"secret"}`, &stubAuthService{})

	err := NewAuthHandler().Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTP error, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
}

func TestAuthHandlerLoginPropagatesFailure(t *testing.T) {
	auth := &stubAuthService{
		loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
			return nil, &domain.APIError{Message: "Invalid credentials"}
		},
	}

	c, _ := newAuthContext(t, http.MethodPost, `{"email":"alice@kar.app","password":"wrong"}`, auth)
	err := NewAuthHandler().Login(c)
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("expected auth failure to propagate, got %v", err)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				User:  &domain.User{ID: "2", Username: input.Username, Role: domain.RoleUser},
				Token: "T",
			}, nil
		},
	}

	c, rec := newAuthContext(t, http.MethodPost, `{"username":"bob","email":"bob@kar.app","password":"secret1"}`, auth)
	if err := NewAuthHandler().Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	c, rec := newAuthContext(t, http.MethodPost, "", &stubAuthService{})
	if err := NewAuthHandler().Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandlerSessionUnauthenticated(t *testing.T) {
	c, rec := newAuthContext(t, http.MethodGet, "", &stubAuthService{})
	if err := NewAuthHandler().Session(c); err != nil {
		t.Fatalf("session: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["authenticated"] != false {
		t.Fatalf("expected unauthenticated session, got %v", body)
	}
	if _, present := body["user"]; present {
		t.Fatalf("user block should be omitted, got %v", body)
	}
}
