package journal

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus collectors for control calls
type Metrics struct {
	controlCallsTotal   *prometheus.CounterVec
	controlCallDuration *prometheus.HistogramVec
	controlCallBytes    *prometheus.HistogramVec
	deviceErrorsTotal   *prometheus.CounterVec
}

// NewMetrics creates the control call metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		controlCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usnjournal_control_calls_total",
				Help: "Total number of control calls issued to the volume device",
			},
			[]string{"operation", "status"},
		),

		controlCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "usnjournal_control_call_duration_seconds",
				Help:    "Control call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		controlCallBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "usnjournal_control_call_bytes",
				Help:    "Bytes returned by successful control calls",
				Buckets: prometheus.ExponentialBuckets(8, 4, 10),
			},
			[]string{"operation"},
		),

		deviceErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "usnjournal_device_errors_total",
				Help: "Total number of failed control calls by native code",
			},
			[]string{"operation", "code"},
		),
	}
}

// RecordControlCall records the outcome of one control call
func (m *Metrics) RecordControlCall(operation string, n int, err error, duration time.Duration) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}

	m.controlCallsTotal.WithLabelValues(operation, status).Inc()
	m.controlCallDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if err != nil {
		code := "unknown"
		if c, ok := errnoOf(err); ok {
			code = strconv.FormatUint(uint64(c), 10)
		}
		m.deviceErrorsTotal.WithLabelValues(operation, code).Inc()
		return
	}

	m.controlCallBytes.WithLabelValues(operation).Observe(float64(n))
}
