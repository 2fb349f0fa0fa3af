package memory

import (
	"context"
	"reflect"
	"testing"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

func TestSessionStoreTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	token, err := store.Token(ctx)
	if err != nil {
		t.Fatalf("token read: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	if err := store.SetToken(ctx, "T"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	token, _ = store.Token(ctx)
	if token != "T" {
		t.Fatalf("expected T, got %q", token)
	}

	if err := store.ClearToken(ctx); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	token, _ = store.Token(ctx)
	if token != "" {
		t.Fatalf("expected cleared token, got %q", token)
	}
}

func TestSessionStoreUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	want := &domain.User{ID: "1", Username: "alice", Email: "alice@kar.app", Role: domain.RoleAdmin}
	if err := store.SetUser(ctx, want); err != nil {
		t.Fatalf("set user: %v", err)
	}

	got, err := store.User(ctx)
	if err != nil {
		t.Fatalf("user read: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}

	if err := store.ClearUser(ctx); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	got, err = store.User(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected nil user after clear, got %+v, err %v", got, err)
	}
}

func TestSessionStoreUserFailsSoft(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	store.CorruptUser("{not json")
	user, err := store.User(ctx)
	if err != nil || user != nil {
		t.Fatalf("expected nil,nil on corrupt payload, got %+v, err %v", user, err)
	}

	if err := store.SetUser(ctx, nil); err != nil {
		t.Fatalf("set nil user: %v", err)
	}
	user, err = store.User(ctx)
	if err != nil || user != nil {
		t.Fatalf("expected nil,nil on null payload, got %+v, err %v", user, err)
	}
}
