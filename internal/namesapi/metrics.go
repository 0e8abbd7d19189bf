package namesapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess   = "success"
	outcomeTransport = "transport_error"
	outcomeInvalid   = "validation_error"
)

// Metrics records one observation per adapter call.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the adapter collectors and registers them with reg.
// A nil registerer leaves them unregistered, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nameboard",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Names API calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nameboard",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Names API round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	switch {
	case err == nil:
	case IsValidation(err):
		outcome = outcomeInvalid
	default:
		outcome = outcomeTransport
	}
	m.requests.WithLabelValues(op, outcome).Inc()
	if outcome != outcomeInvalid {
		m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
