package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	if m.Counter != nil {
		return m.Counter.GetValue()
	}
	return m.Gauge.GetValue()
}

func TestMiddleware_LabelsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/xp/between", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/xp/between", "418"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/xp/between?start=1&end=70", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	after := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/xp/between", "418"))
	assert.Equal(t, before+1, after)
	assert.Zero(t, counterValue(t, HTTPRequestsInFlight))
}

func TestMiddleware_UnmatchedWithoutRouter(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	before := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodPost, PathUnmatched, "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/nowhere/123", nil))
	after := counterValue(t, HTTPRequestsTotal.WithLabelValues(http.MethodPost, PathUnmatched, "200"))

	assert.Equal(t, before+1, after)
}
