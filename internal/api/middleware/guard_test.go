package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/service"
	"github.com/kar-app/kar-portal/internal/infrastructure/db/memory"
)

// controllerFor builds a restored controller over a seeded store. A nil user
// with an empty token yields an unauthenticated session.
func controllerFor(t *testing.T, token string, user *domain.User) *service.SessionController {
	t.Helper()
	ctx := context.Background()
	store := memory.NewSessionStore()
	if token != "" {
		if err := store.SetToken(ctx, token); err != nil {
			t.Fatalf("seed token: %v", err)
		}
	}
	if user != nil {
		if err := store.SetUser(ctx, user); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	ctrl := service.NewSessionController(store, nil)
	ctrl.Restore(ctx)
	return ctrl
}

func invokeGuard(t *testing.T, ctrl *service.SessionController, require ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ctrl != nil {
		c.Set(ContextKeySession, ctrl)
	}

	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "content")
	}
	if err := Guard(require...)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestGuardWhileRestoring(t *testing.T) {
	// no Restore call: controller stays in the restoring state
	ctrl := service.NewSessionController(memory.NewSessionStore(), nil)

	rec := invokeGuard(t, ctrl)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "restoring") {
		t.Fatalf("expected restoring answer, got %s", rec.Body.String())
	}
	if rec.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	rec := invokeGuard(t, controllerFor(t, "", nil))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestGuardUnauthenticatedSkipsRoleCheck(t *testing.T) {
	// a role requirement must not change the target for anonymous sessions
	rec := invokeGuard(t, controllerFor(t, "", nil), domain.RoleAdmin)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("expected redirect to %s, got %s", LoginPath, loc)
	}
}

func TestGuardRedirectsWrongRole(t *testing.T) {
	ctrl := controllerFor(t, "T", &domain.User{ID: "1", Role: domain.RoleGarage})

	rec := invokeGuard(t, ctrl, domain.RoleAdmin)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != DashboardPath {
		t.Fatalf("expected redirect to %s, got %s", DashboardPath, loc)
	}
}

func TestGuardDefaultRoleFailsAdminCheck(t *testing.T) {
	// token without a cached profile: effective role is user
	rec := invokeGuard(t, controllerFor(t, "T", nil), domain.RoleAdmin)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != DashboardPath {
		t.Fatalf("expected redirect to %s, got %s", DashboardPath, loc)
	}
}

func TestGuardAllowsMatchingRole(t *testing.T) {
	ctrl := controllerFor(t, "T", &domain.User{ID: "1", Role: domain.RoleAdmin})

	rec := invokeGuard(t, ctrl, domain.RoleAdmin)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "content" {
		t.Fatalf("expected next handler to run, got %s", rec.Body.String())
	}
}

func TestGuardAllowsAnyAuthenticatedWithoutRoles(t *testing.T) {
	rec := invokeGuard(t, controllerFor(t, "T", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGuardWithoutSessionMiddleware(t *testing.T) {
	rec := invokeGuard(t, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
