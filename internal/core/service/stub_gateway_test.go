package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kar-app/kar-portal/internal/core/domain"
)

// stubGateway serves canned envelopes keyed by "METHOD path" and records the
// last call for request-shape assertions.
type stubGateway struct {
	envelopes map[string]*domain.Envelope
	err       error

	lastMethod string
	lastPath   string
	lastBody   any
}

func (g *stubGateway) call(method, path string, body any) (*domain.Envelope, error) {
	g.lastMethod, g.lastPath, g.lastBody = method, path, body
	if g.err != nil {
		return nil, g.err
	}
	if env, ok := g.envelopes[method+" "+path]; ok {
		return env, nil
	}
	return &domain.Envelope{Success: false, Message: "no stub for " + method + " " + path}, nil
}

func (g *stubGateway) Get(_ context.Context, path string) (*domain.Envelope, error) {
	return g.call(http.MethodGet, path, nil)
}

func (g *stubGateway) Post(_ context.Context, path string, body any) (*domain.Envelope, error) {
	return g.call(http.MethodPost, path, body)
}

func (g *stubGateway) Put(_ context.Context, path string, body any) (*domain.Envelope, error) {
	return g.call(http.MethodPut, path, body)
}

func (g *stubGateway) Delete(_ context.Context, path string) (*domain.Envelope, error) {
	return g.call(http.MethodDelete, path, nil)
}

func okEnvelope(t *testing.T, data string) *domain.Envelope {
	t.Helper()
	env := &domain.Envelope{Success: true, Message: "ok"}
	if data != "" {
		env.Data = json.RawMessage(data)
	}
	return env
}

func failEnvelope(message string) *domain.Envelope {
	return &domain.Envelope{Success: false, Message: message}
}
