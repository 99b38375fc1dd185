package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects every Prometheus series the auth core exposes on
// /api/v1/metrics: one request-shaped pair for the middleware layer, plus a
// domain counter per use-case outcome named in the ambient stack.
var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madome_auth_requests_total",
			Help: "Total number of HTTP requests handled, by method/path/status",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "madome_auth_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AuthcodesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "madome_auth_authcodes_issued_total",
			Help: "Total number of auth codes issued",
		},
	)

	AuthcodesRateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "madome_auth_authcodes_rate_limited_total",
			Help: "Total number of auth code requests rejected for exceeding the active-code limit",
		},
	)

	CeremoniesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madome_auth_passkey_ceremonies_started_total",
			Help: "Total number of WebAuthn ceremonies started, by kind",
		},
		[]string{"kind"},
	)

	CeremoniesFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madome_auth_passkey_ceremonies_finished_total",
			Help: "Total number of WebAuthn ceremonies finished, by kind and result",
		},
		[]string{"kind", "result"},
	)

	TokensIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "madome_auth_tokens_issued_total",
			Help: "Total number of token pairs issued, by flow",
		},
		[]string{"flow"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthcodesIssued,
		AuthcodesRateLimited,
		CeremoniesStarted,
		CeremoniesFinished,
		TokensIssued,
	)
}
