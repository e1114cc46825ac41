package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/campaigns/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/campaigns/{id}", "418")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Requests))
}

func TestRecorders(t *testing.T) {
	m := New()
	m.RecordComputation("simulated", time.Millisecond)
	m.RecordComputation("simulated", time.Millisecond)
	m.RecordCacheLookup(CacheHit)
	m.RecordRateLimitHit("/api/v1/campaigns")
	m.SetCampaigns(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Computations.WithLabelValues("simulated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitHits.WithLabelValues("/api/v1/campaigns")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Campaigns))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordComputation("actual", time.Second)
		m.RecordCacheLookup(CacheMiss)
		m.RecordRateLimitHit("/")
		m.SetCampaigns(1)
		m.RecordRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}

func TestHandlerExposesNamespace(t *testing.T) {
	m := New()
	m.RecordCacheLookup(CacheMiss)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), Namespace+"_kpi_cache_lookups_total"))
}
