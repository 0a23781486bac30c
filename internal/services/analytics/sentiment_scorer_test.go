package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScorer(t *testing.T, h http.HandlerFunc) *HTTPSentimentScorer {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPSentimentScorer(srv.URL, "tok", time.Second)
}

func TestClassifyFlatResponse(t *testing.T) {
	s := newScorer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"good", "bad"}, req.Inputs)
		_, _ = w.Write([]byte(`[{"label":"POSITIVE","score":0.9},{"label":"NEGATIVE","score":0.8}]`))
	})

	out, err := s.Classify(context.Background(), []string{"good", "bad"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "POSITIVE", out[0].Label)
	assert.Equal(t, "NEGATIVE", out[1].Label)
	assert.InDelta(t, 0.8, out[1].Score, 1e-9)
}

func TestClassifyNestedResponsePicksBestLabel(t *testing.T) {
	s := newScorer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[{"label":"NEGATIVE","score":0.1},{"label":"POSITIVE","score":0.9}],[{"label":"NEGATIVE","score":0.7},{"label":"POSITIVE","score":0.3}]]`))
	})

	out, err := s.Classify(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", out[0].Label)
	assert.Equal(t, "NEGATIVE", out[1].Label)
}

func TestClassifyCountMismatchFails(t *testing.T) {
	s := newScorer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"POSITIVE","score":0.9}]`))
	})

	out, err := s.Classify(context.Background(), []string{"a", "b"})
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestClassifyUpstreamErrorReturnsEmpty(t *testing.T) {
	s := newScorer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model loading"}`, http.StatusServiceUnavailable)
	})

	out, err := s.Classify(context.Background(), []string{"a"})
	assert.Error(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestClassifyEmptyInputSkipsCall(t *testing.T) {
	var calls int32
	s := newScorer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	out, err := s.Classify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestClassifyPassesEmptyStringsThrough(t *testing.T) {
	s := newScorer(t, func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{""}, req.Inputs)
		_, _ = w.Write([]byte(`[{"label":"POSITIVE","score":0.5}]`))
	})

	out, err := s.Classify(context.Background(), []string{""})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestDisabledScorer(t *testing.T) {
	out, err := DisabledScorer{}.Classify(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrScorerDisabled)
	assert.Empty(t, out)
}
