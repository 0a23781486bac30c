package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketintel",
			Subsystem: "upstream",
			Name:      "latency_seconds",
			Help:      "Latency of calls to external providers",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	UpstreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketintel",
			Subsystem: "upstream",
			Name:      "errors_total",
			Help:      "Failed calls to external providers",
		},
		[]string{"endpoint"},
	)
)

// Register adds the upstream collectors to reg once. A nil reg uses the default registerer.
func Register(reg prometheus.Registerer) {
	once.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		reg.MustRegister(UpstreamLatency, UpstreamErrors)
	})
}

// Observe records one upstream call that started at start.
func Observe(endpoint string, start time.Time, err error) {
	UpstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		UpstreamErrors.WithLabelValues(endpoint).Inc()
	}
}
