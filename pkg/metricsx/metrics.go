// Package metricsx holds the Prometheus collectors exported on /metrics.
package metricsx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for authorization decisions.
const (
	OutcomeAllow = "allow"
	OutcomeDeny  = "deny"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AuthzDecisionsTotal *prometheus.CounterVec
	IssuesCreatedTotal  prometheus.Counter
	InvitesTotal        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, on registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskify_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "taskify_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AuthzDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskify_authz_decisions_total",
				Help: "Workspace authorization decisions",
			},
			[]string{"resource", "verb", "outcome"},
		),
		IssuesCreatedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "taskify_issues_created_total",
				Help: "Issues created",
			},
		),
		InvitesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskify_invites_total",
				Help: "Workspace invites by resulting status",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthzDecisionsTotal,
		m.IssuesCreatedTotal,
		m.InvitesTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// NewNop returns metrics registered on a private registry, for tests and
// callers that do not export /metrics.
func NewNop() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

// Authz records one authorization decision.
func (m *Metrics) Authz(resource, verb string, allowed bool) {
	if m == nil {
		return
	}
	outcome := OutcomeDeny
	if allowed {
		outcome = OutcomeAllow
	}
	m.AuthzDecisionsTotal.WithLabelValues(resource, verb, outcome).Inc()
}

// IssueCreated counts one created issue.
func (m *Metrics) IssueCreated() {
	if m == nil {
		return
	}
	m.IssuesCreatedTotal.Inc()
}

// Invite counts one invite, labelled by the status it was stored with.
func (m *Metrics) Invite(status string) {
	if m == nil {
		return
	}
	m.InvitesTotal.WithLabelValues(status).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// HTTPMiddleware instruments requests. The route label is the ServeMux
// pattern, so it must wrap the mux directly for r.Pattern to be populated.
func HTTPMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}
