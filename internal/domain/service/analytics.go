package service

import (
	"context"

	"MarketIntel/internal/domain/models"
)

// SentimentScorer classifies texts, one result per input in order.
type SentimentScorer interface {
	Classify(ctx context.Context, texts []string) ([]models.Sentiment, error)
}

// ReportRenderer renders an analysis into a stored report and returns its file name.
type ReportRenderer interface {
	Render(ctx context.Context, tickers []string, data *models.OrderedMap[models.TickerData], benchmark *models.OrderedMap[models.KpiSet]) (string, error)
}
