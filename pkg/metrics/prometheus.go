package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketintel"

// Recorder implements repository.Metrics using Prometheus.
type Recorder struct {
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	droppedTickers prometheus.Counter
	degraded       *prometheus.CounterVec
	analyses       prometheus.Counter
}

// New creates a recorder registered on the default registerer.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a recorder registered on reg.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of operations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		droppedTickers: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dropped_tickers_total",
				Help:      "Tickers omitted from a result because the provider had no data",
			},
		),
		degraded: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "degraded_enrichments_total",
				Help:      "Optional enrichment stages that fell back to an empty value",
			},
			[]string{"source"},
		),
		analyses: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Completed competitive analyses",
			},
		),
	}
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordDroppedTicker counts a ticker skipped for lack of data.
func (r *Recorder) RecordDroppedTicker() {
	r.droppedTickers.Inc()
}

// RecordDegraded counts an optional enrichment that fell back.
func (r *Recorder) RecordDegraded(source string) {
	r.degraded.WithLabelValues(source).Inc()
}

// RecordAnalysis counts a completed analysis.
func (r *Recorder) RecordAnalysis() {
	r.analyses.Inc()
}
