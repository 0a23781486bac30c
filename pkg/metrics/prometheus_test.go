package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	r := NewWithRegistry(prometheus.NewRegistry())

	r.RecordError("provider")
	r.RecordError("provider")
	r.RecordDroppedTicker()
	r.RecordDegraded("news")
	r.RecordAnalysis()
	r.RecordLatency("analysis", 0.2)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.errorsTotal.WithLabelValues("provider")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.droppedTickers))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.degraded.WithLabelValues("news")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.analyses))
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegistry(prometheus.NewRegistry())
		NewWithRegistry(prometheus.NewRegistry())
	})
}
