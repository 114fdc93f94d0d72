package metricsx_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAuthzCounter(t *testing.T) {
	m := metricsx.NewNop()

	m.Authz("issue", "delete", true)
	m.Authz("issue", "delete", false)
	m.Authz("issue", "delete", false)

	require.Equal(t, 1.0, testutil.ToFloat64(m.AuthzDecisionsTotal.WithLabelValues("issue", "delete", metricsx.OutcomeAllow)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.AuthzDecisionsTotal.WithLabelValues("issue", "delete", metricsx.OutcomeDeny)))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *metricsx.Metrics
	require.NotPanics(t, func() {
		m.Authz("project", "read", true)
		m.IssueCreated()
		m.Invite("PENDING")
	})
}

func TestHTTPMiddlewareUsesRoutePattern(t *testing.T) {
	m := metricsx.NewNop()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /project/{projectId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := metricsx.HTTPMiddleware(m)(mux)

	for _, path := range []string{"/project/a", "/project/b", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "GET /project/{projectId}", "204")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metricsx.NewMetrics(reg)
	m.IssueCreated()

	srv := httptest.NewServer(metricsx.Handler(reg))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "taskify_issues_created_total 1"))
}
