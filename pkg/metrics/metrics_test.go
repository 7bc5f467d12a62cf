package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBackendCall(t *testing.T) {
	m := New("karting-front")

	m.ObserveBackendCall("submit_booking", "ok", time.Now())
	m.ObserveBackendCall("submit_booking", "ok", time.Now())
	m.ObserveBackendCall("submit_booking", "validation", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BackendRequestsTotal.WithLabelValues("submit_booking", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendRequestsTotal.WithLabelValues("submit_booking", "validation")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveBackendCall("x", "ok", time.Now())
		m.IncStaleResponses()
		m.SetActiveDrafts(3)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New("karting-front")
	m.IncStaleResponses()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reservation_stale_responses_total")
}
