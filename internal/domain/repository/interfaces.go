package repository

import (
	"context"
	"errors"
	"io"

	"MarketIntel/internal/domain/models"
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidReportName = errors.New("invalid report name")
)

// MarketData returns daily history for a ticker over the trailing days.
// An empty series with a nil error means the provider has no rows.
type MarketData interface {
	Historical(ctx context.Context, ticker string, days int) (models.PriceSeries, error)
}

// NewsFeed returns up to limit recent items for a ticker, newest first.
type NewsFeed interface {
	Latest(ctx context.Context, ticker string, limit int) ([]models.NewsItem, error)
}

// ReportStore persists rendered reports by name.
type ReportStore interface {
	Save(ctx context.Context, name string, content []byte) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type EventPublisher interface {
	PublishAnalysis(ctx context.Context, ev *models.AnalysisEvent) error
	Close() error
}

type Metrics interface {
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordDroppedTicker()
	RecordDegraded(source string)
	RecordAnalysis()
}
