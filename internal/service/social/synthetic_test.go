package social

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticFeedTemplatesTicker(t *testing.T) {
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f := NewSyntheticFeed()
	f.now = func() time.Time { return ts }

	items, err := f.Latest(context.Background(), "NVDA", 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "NVDA stock is gaining traction!", items[0].Title)
	assert.Equal(t, "Positive outlook for NVDA", items[1].Title)
	assert.Equal(t, "Is NVDA the next big thing?", items[2].Title)
	assert.Equal(t, ts, items[0].Created)
}

func TestSyntheticFeedRespectsLimit(t *testing.T) {
	items, err := NewSyntheticFeed().Latest(context.Background(), "A", 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
