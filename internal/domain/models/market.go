package models

import "time"

// PricePoint is one daily observation.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a per-ticker sequence ascending by date.
type PriceSeries struct {
	Ticker string       `json:"ticker"`
	Points []PricePoint `json:"points"`
}

func (s PriceSeries) Len() int    { return len(s.Points) }
func (s PriceSeries) Empty() bool { return len(s.Points) == 0 }

func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Close
	}
	return out
}

func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Volume
	}
	return out
}

func (s PriceSeries) Dates() []time.Time {
	out := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Date
	}
	return out
}

// NewsItem is a headline with its publication time.
type NewsItem struct {
	Created time.Time `json:"created"`
	Title   string    `json:"title"`
}

// Sentiment is one classifier verdict.
type Sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// KpiSet holds the summary statistics for one ticker.
type KpiSet struct {
	AveragePrice          float64 `json:"average_price"`
	Volatility            float64 `json:"volatility"`
	PriceChangePercentage float64 `json:"price_change_percentage"`
	AverageVolume         float64 `json:"average_volume"`
	SharpeRatio           float64 `json:"sharpe_ratio"`
}
