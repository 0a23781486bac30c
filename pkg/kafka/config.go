package kafka

import (
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// ProducerOption configures Producer.
type ProducerOption func(*ProducerConfig)

// ProducerConfig holds producer configuration.
type ProducerConfig struct {
	Brokers     []string
	Compression string // gzip, snappy, lz4 or zstd

	RequiredAcks int // -1 waits for all in-sync replicas
	MaxAttempts  int

	WriteTimeout time.Duration
	ReadTimeout  time.Duration

	BatchSize    int
	BatchBytes   int
	BatchTimeout time.Duration

	// HashByKey routes equal keys to one partition.
	HashByKey       bool
	AutoCreateTopic bool
}

// DefaultProducerConfig returns the settings used when no option overrides them.
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Compression:  "gzip",
		RequiredAcks: -1,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		BatchSize:    100,
		BatchBytes:   1 << 20,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// Validate reports missing brokers or an unknown compression codec.
func (c *ProducerConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("brokers are required")
	}
	switch c.Compression {
	case "", "gzip", "snappy", "lz4", "zstd":
	default:
		return fmt.Errorf("unknown compression %q", c.Compression)
	}
	return nil
}

func (c *ProducerConfig) writer() *kafka.Writer {
	bal := kafka.Balancer(&kafka.LeastBytes{})
	if c.HashByKey {
		bal = &kafka.Hash{}
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Balancer:               bal,
		RequiredAcks:           kafka.RequiredAcks(c.RequiredAcks),
		Compression:            parseCompression(c.Compression),
		MaxAttempts:            c.MaxAttempts,
		WriteTimeout:           c.WriteTimeout,
		ReadTimeout:            c.ReadTimeout,
		BatchSize:              c.BatchSize,
		BatchBytes:             int64(c.BatchBytes),
		BatchTimeout:           c.BatchTimeout,
		AllowAutoTopicCreation: c.AutoCreateTopic,
	}
}

// WithBrokers sets Kafka brokers.
func WithBrokers(brokers []string) ProducerOption {
	return func(c *ProducerConfig) { c.Brokers = brokers }
}

// WithCompression sets compression type.
func WithCompression(compression string) ProducerOption {
	return func(c *ProducerConfig) { c.Compression = compression }
}

// WithDelivery sets required acknowledgements and writer retry attempts.
func WithDelivery(acks, attempts int) ProducerOption {
	return func(c *ProducerConfig) {
		c.RequiredAcks = acks
		if attempts > 0 {
			c.MaxAttempts = attempts
		}
	}
}

// WithBatching sets batch limits. Non-positive values keep the defaults.
func WithBatching(size, bytes int, timeout time.Duration) ProducerOption {
	return func(c *ProducerConfig) {
		if size > 0 {
			c.BatchSize = size
		}
		if bytes > 0 {
			c.BatchBytes = bytes
		}
		if timeout > 0 {
			c.BatchTimeout = timeout
		}
	}
}

// WithTimeouts sets writer read/write timeouts.
func WithTimeouts(write, read time.Duration) ProducerOption {
	return func(c *ProducerConfig) {
		c.WriteTimeout = write
		c.ReadTimeout = read
	}
}

// WithHashByKey sets the hash balancer so events for one ticker set keep their order.
func WithHashByKey(hash bool) ProducerOption {
	return func(c *ProducerConfig) { c.HashByKey = hash }
}

// WithAutoCreateTopic lets the writer create missing topics.
func WithAutoCreateTopic(enabled bool) ProducerOption {
	return func(c *ProducerConfig) { c.AutoCreateTopic = enabled }
}
