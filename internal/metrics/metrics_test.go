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

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/messages/{id}", "204")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveChainCall("transfer", "ok")
	m.ObserveBalanceDrift()
	m.ObserveWithdrawal("P2P", "COMPLETED")
	m.ObserveChatRelay("delivered")
	m.ObserveChainOperation("REGISTER", "submitted")
	m.ObserveJob("reconcile", 0, true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, name := range []string{
		"maschat_chain_calls_total",
		"maschat_reconcile_drift_total",
		"maschat_withdrawals_processed_total",
		"maschat_chat_frames_total",
		"maschat_chain_outbox_total",
		"maschat_scheduler_job_duration_seconds",
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(body, name), name)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveChainCall("transfer", "ok")
		m.ObserveBalanceDrift()
		m.ObserveWithdrawal("BANK", "FAILED")
		m.ObserveChatRelay("dropped")
		m.ObserveChainOperation("STAKE", "failed")
		m.ObserveJob("dispatch", time.Second, false)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, m.Middleware(next))
}
