package repository

import (
	"context"
	"strings"

	"MarketIntel/internal/domain/models"
	"MarketIntel/internal/domain/repository"
)

// producer is the part of pkg/kafka.Producer used here.
type producer interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaPublisher implements EventPublisher for Kafka.
type KafkaPublisher struct {
	producer producer
	topic    string
}

// NewKafkaPublisher creates Kafka publisher.
func NewKafkaPublisher(p producer, topic string) repository.EventPublisher {
	return &KafkaPublisher{producer: p, topic: topic}
}

// PublishAnalysis keys the event by the joined ticker list so repeats land on one partition.
func (p *KafkaPublisher) PublishAnalysis(ctx context.Context, ev *models.AnalysisEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(strings.Join(ev.Tickers, ",")), ev)
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NoopPublisher drops events.
type NoopPublisher struct{}

func (NoopPublisher) PublishAnalysis(context.Context, *models.AnalysisEvent) error { return nil }
func (NoopPublisher) Close() error                                                 { return nil }

var _ repository.EventPublisher = NoopPublisher{}
