package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observer(t *testing.T) {
	m := New()

	m.Hit("category")
	m.Hit("category")
	m.Miss("category")
	m.Evict("cast")
	m.FetchFailed("poster")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("category")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMisses.WithLabelValues("category")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheEvictions.WithLabelValues("cast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchFailures.WithLabelValues("poster")))
}

func TestMetrics_HandlerAndMiddleware(t *testing.T) {
	m := New()

	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	m.Hit("genres")

	rec = httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `cinebrowse_cache_hits_total{cache="genres"} 1`), body)
	assert.True(t, strings.Contains(body, `cinebrowse_http_latency_seconds_count{method="GET",status_code="418"} 1`), body)
}
