package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Contact pipeline
	ContactSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact submissions by terminal outcome",
		},
		[]string{"outcome"}, // sent, spam_detected, missing_fields, invalid_email, message_too_short, delivery_failed, unexpected
	)

	EmailSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_send_duration_seconds",
			Help:    "Duration of email provider calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"result"}, // ok, error
	)

	EmailBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "email_circuit_breaker_open",
			Help: "1 when the email provider circuit breaker is open, 0 otherwise",
		},
	)

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)
)

// RecordContactOutcome counts one submission reaching a terminal state.
func RecordContactOutcome(outcome string) {
	ContactSubmissionsTotal.WithLabelValues(outcome).Inc()
}

func RecordEmailSend(duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EmailSendDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// SetEmailBreakerOpen mirrors the breaker state into a gauge.
func SetEmailBreakerOpen(open bool) {
	if open {
		EmailBreakerState.Set(1)
		return
	}
	EmailBreakerState.Set(0)
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Contact implements the contact service's metrics hook on the
// package-level collectors.
type Contact struct{}

func (Contact) SubmissionOutcome(outcome string) { RecordContactOutcome(outcome) }

func (Contact) EmailSent(d time.Duration, err error) { RecordEmailSend(d, err) }
