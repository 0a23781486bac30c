package logger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	mu      sync.Mutex
	topic   string
	batches [][]AggregatedLogEntry
}

func (p *capturePublisher) PublishMessages(_ context.Context, topic string, payloads ...interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	batch := make([]AggregatedLogEntry, 0, len(payloads))
	for _, v := range payloads {
		batch = append(batch, v.(AggregatedLogEntry))
	}
	p.batches = append(p.batches, batch)
	return nil
}

func TestCollectorDeduplicatesAndFlushesOnClose(t *testing.T) {
	pub := &capturePublisher{}
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 10, Topic: "logs", Publisher: pub})

	fields := map[string]interface{}{"ticker": "X"}
	c.AddLog("error", "provider failed", fields, "a.go:1")
	c.AddLog("error", "provider failed", fields, "a.go:1")
	c.AddLog("error", "other", nil, "a.go:2")
	assert.Equal(t, 2, c.Pending())

	c.Close()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.batches, 1)
	assert.Equal(t, "logs", pub.topic)
	assert.Len(t, pub.batches[0], 2)

	counts := map[string]int{}
	for _, e := range pub.batches[0] {
		counts[e.Message] = e.Count
	}
	assert.Equal(t, 2, counts["provider failed"])
	assert.Equal(t, 1, counts["other"])
}

func TestLoggerErrorFeedsCollector(t *testing.T) {
	pub := &capturePublisher{}
	l := Nop()
	l.AddCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 1, Topic: "logs", Publisher: pub})

	l.Error("report write failed", Error(errors.New("disk full")))
	l.RemoveCollector()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.batches, 1)
	assert.Equal(t, "report write failed", pub.batches[0][0].Message)
	assert.Equal(t, "disk full", pub.batches[0][0].Fields["error"])
}
