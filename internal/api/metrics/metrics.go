// Package metrics defines and registers all custom Prometheus metrics for
// the forum API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry on import;
// the router exposes them at GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "forum"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the current number of live sessions.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of active sessions.",
	},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ForumsCreatedTotal counts forums created through the API (seed data excluded).
var ForumsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forums_created_total",
		Help:      "Total number of forums created through the API.",
	},
)

// PostsCreatedTotal counts posts created through the API.
// Label:
//   - forum: slug of the owning forum
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created through the API, by forum.",
	},
	[]string{"forum"},
)

// CommentsCreatedTotal counts comments created through the API.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created through the API.",
	},
)
