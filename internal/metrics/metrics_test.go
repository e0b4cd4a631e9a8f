package metrics

import (
	"testing"
	"time"

	"homeserve_backend/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainCounters(t *testing.T) {
	m := New()

	m.BookingTransition(models.BookingStatusPending, models.BookingStatusAccepted)
	m.BookingTransition(models.BookingStatusPending, models.BookingStatusAccepted)
	m.ReviewSubmitted(5)
	m.LoginAttempt(models.AccountKindUser, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("pending", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reviewsSubmitted.WithLabelValues("5")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("user", "failure")))
}

func TestHTTPObservation(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/api/v1/providers", 200, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/providers", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.BookingTransition(models.BookingStatusAccepted, models.BookingStatusCompleted)
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	})
}
