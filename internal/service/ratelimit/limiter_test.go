package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterRefills(t *testing.T) {
	now := time.Unix(0, 0)
	l := New(2, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
}

func TestLimiterSweepDropsRefilledBuckets(t *testing.T) {
	now := time.Unix(0, 0)
	l := New(2, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("idle"))
	assert.True(t, l.Allow("busy"))
	assert.True(t, l.Allow("busy"))
	assert.Equal(t, 2, l.Len())

	now = now.Add(time.Second)
	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())

	// A swept key starts again with a full bucket.
	assert.True(t, l.Allow("idle"))
	assert.True(t, l.Allow("idle"))
	assert.False(t, l.Allow("idle"))
}

func TestLimiterJanitorStopsOnClose(t *testing.T) {
	l := New(1, 1000)
	l.RunJanitor(time.Millisecond)
	assert.True(t, l.Allow("a"))
	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, l.Close())
	assert.NoError(t, l.Close())
}
