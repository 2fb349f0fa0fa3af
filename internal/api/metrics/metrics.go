// Package metrics defines all custom Prometheus metrics for the KAR portal.
// It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "karportal"

// ── Upstream (backend API) metrics ───────────────────────────────────────────

// UpstreamRequestsTotal counts calls through the API gateway client.
// Labels:
//   - method: HTTP verb
//   - resource: backend resource family (e.g. "vehicles", "admin_users")
//   - status: upstream HTTP status code
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the KAR backend.",
	},
	[]string{"method", "resource", "status"},
)

// UpstreamErrorsTotal counts gateway calls that never yielded an envelope.
// Label:
//   - reason: "transport" (request failed) or "parse" (body not an envelope)
var UpstreamErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_errors_total",
		Help:      "Total number of backend calls that failed before an envelope was parsed.",
	},
	[]string{"reason"},
)

// UpstreamRequestDuration measures backend call latency per resource family.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of backend calls from request start to envelope parse.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// SessionInvalidationsTotal counts sessions expired by an upstream 401.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of sessions cleared after an upstream 401.",
	},
)

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuardDenialsTotal counts navigations rejected by the access guard.
// Label:
//   - reason: "unauthenticated" or "role"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of requests redirected by the access guard.",
	},
	[]string{"reason"},
)
