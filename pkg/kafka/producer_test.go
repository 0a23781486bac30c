package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	require.Error(t, err)
}

func TestPublishEncodesJSON(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "gzip")

	require.NoError(t, p.Publish(context.Background(), "events", []byte("AAPL"), map[string]int{"n": 1}))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "events", w.msgs[0].Topic)
	assert.Equal(t, "AAPL", string(w.msgs[0].Key))

	var got map[string]int
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, 1, got["n"])
}

func TestPublishMessagesPassesBytesThrough(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "gzip")

	require.NoError(t, p.PublishMessages(context.Background(), "logs", []byte("raw")))
	assert.Equal(t, "raw", string(w.msgs[0].Value))
	assert.Nil(t, w.msgs[0].Key)
}

func TestPublishBatch(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "gzip")

	require.NoError(t, p.PublishBatch(context.Background(), "t", nil))
	assert.Empty(t, w.msgs)

	require.NoError(t, p.PublishBatch(context.Background(), "t", []Message{{Value: "a"}, {Value: "b"}}))
	assert.Len(t, w.msgs, 2)
}

func TestPublishMessagesOnePerPayload(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "gzip")

	require.NoError(t, p.PublishMessages(context.Background(), "logs"))
	assert.Empty(t, w.msgs)

	require.NoError(t, p.PublishMessages(context.Background(), "logs",
		map[string]int{"count": 2}, map[string]int{"count": 5}))
	require.Len(t, w.msgs, 2)
	assert.JSONEq(t, `{"count":2}`, string(w.msgs[0].Value))
	assert.JSONEq(t, `{"count":5}`, string(w.msgs[1].Value))
	assert.Equal(t, "logs", w.msgs[1].Topic)
}

func TestPublishWrapsWriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newProducer(w, "gzip")

	err := p.Publish(context.Background(), "t", nil, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestParseCompression(t *testing.T) {
	assert.Equal(t, kafka.Snappy, parseCompression("snappy"))
	assert.Equal(t, kafka.Gzip, parseCompression("unknown"))
}
