package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/leads", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	h.ServeHTTP(httptest.NewRecorder(), req)

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodPost, "/api/leads", "201"))
	assert.Equal(t, 2.0, count)
}

func TestMiddlewareDefaultsStatusTo200(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler writes nothing.
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	count := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/", "200"))
	assert.Equal(t, 1.0, count)
}

func TestNewHTTPMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	require.NotNil(t, m)

	// Histograms without observations are not gathered yet; force one.
	m.requestLatency.WithLabelValues("GET", "/").Observe(0.01)
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
