// Package gateway implements the single chokepoint for all backend calls.
// It attaches the session's bearer token, parses the uniform response
// envelope, normalises transport and HTTP failures, and expires the session
// on any 401 — regardless of which endpoint triggered it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kar-app/kar-portal/internal/api/metrics"
	"github.com/kar-app/kar-portal/internal/core/domain"
	"github.com/kar-app/kar-portal/internal/core/ports"
)

// Client translates (method, path, optional body) triples into parsed
// envelopes. The zero-session base client carries process-wide configuration;
// WithSession binds a copy to one session store. Every call is at-most-once:
// no retry, no queuing, platform-default timeouts only.
type Client struct {
	baseURL        string
	http           *http.Client
	log            zerolog.Logger
	store          ports.SessionStore
	onUnauthorized func(context.Context)
}

// New creates the base client. httpClient may be nil, in which case
// http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// WithSession returns a copy of the client bound to the given session store.
// The bound client reads the bearer token from it and clears it on 401.
func (c *Client) WithSession(store ports.SessionStore) *Client {
	bound := *c
	bound.store = store
	return &bound
}

// OnUnauthorized registers the hook fired after a 401 has cleared the
// session. Wire it before issuing calls.
func (c *Client) OnUnauthorized(fn func(context.Context)) {
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string) (*domain.Envelope, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*domain.Envelope, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (*domain.Envelope, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*domain.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*domain.Envelope, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: encode body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, &domain.NetworkError{Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	if c.store != nil {
		if token, _ := c.store.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("transport").Inc()
		return nil, &domain.NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	var env domain.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("parse").Inc()
		return nil, &domain.NetworkError{Cause: err}
	}

	resource := resourceLabel(path)
	metrics.UpstreamRequestsTotal.WithLabelValues(method, resource, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession(ctx, method, path)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.StatusError{Code: resp.StatusCode, Message: env.Message}
	}

	return &env, nil
}

// expireSession clears the session store and notifies the subscriber. It runs
// before the 401 is surfaced to the caller, so the store is already empty by
// the time the call settles.
func (c *Client) expireSession(ctx context.Context, method, path string) {
	if c.store != nil {
		if err := c.store.ClearToken(ctx); err != nil {
			c.log.Error().Err(err).Msg("clear token after 401")
		}
		if err := c.store.ClearUser(ctx); err != nil {
			c.log.Error().Err(err).Msg("clear user after 401")
		}
	}

	metrics.SessionInvalidationsTotal.Inc()
	c.log.Warn().Str("method", method).Str("path", path).Msg("session invalidated by upstream 401")

	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

// resourceLabel reduces a request path to its resource family so metric
// cardinality stays bounded (no document ids in labels).
func resourceLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 1 && parts[0] == "api" {
		parts = parts[1:]
	}
	if parts[0] == "admin" || parts[0] == "garage" {
		if len(parts) > 1 {
			return parts[0] + "_" + parts[1]
		}
		return parts[0]
	}
	return parts[0]
}
