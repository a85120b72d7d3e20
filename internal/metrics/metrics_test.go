package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/umerfilms/website/internal/metrics"
)

func TestRecordContactOutcome(t *testing.T) {
	before := testutil.ToFloat64(metrics.ContactSubmissionsTotal.WithLabelValues("spam_detected"))
	metrics.Contact{}.SubmissionOutcome("spam_detected")
	metrics.RecordContactOutcome("spam_detected")
	after := testutil.ToFloat64(metrics.ContactSubmissionsTotal.WithLabelValues("spam_detected"))
	assert.Equal(t, before+2, after)
}

func TestRecordEmailSend(t *testing.T) {
	metrics.Contact{}.EmailSent(120*time.Millisecond, nil)
	metrics.RecordEmailSend(2*time.Second, errors.New("provider down"))
	// one series per result label
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.EmailSendDuration))
}

func TestSetEmailBreakerOpen(t *testing.T) {
	metrics.SetEmailBreakerOpen(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.EmailBreakerState))
	metrics.SetEmailBreakerOpen(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.EmailBreakerState))
}

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Post("/api/contact", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/contact", "400")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPActiveRequests))
}
