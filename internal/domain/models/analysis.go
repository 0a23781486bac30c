package models

import (
	"encoding/json"
	"time"
)

// Sentiment source categories.
const (
	SourceNews   = "news"
	SourceSocial = "social"
)

// TickerData is the full per-ticker analysis.
type TickerData struct {
	KPIs      KpiSet                 `json:"kpis"`
	Sentiment map[string][]Sentiment `json:"sentiment"`
	News      []NewsItem             `json:"news"`
}

// NewTickerData returns a TickerData whose lists encode as [] rather than null.
func NewTickerData(kpis KpiSet) TickerData {
	return TickerData{
		KPIs: kpis,
		Sentiment: map[string][]Sentiment{
			SourceNews:   {},
			SourceSocial: {},
		},
		News: []NewsItem{},
	}
}

// AnalysisResult is the response of a full competitive analysis.
type AnalysisResult struct {
	Data           *OrderedMap[TickerData] `json:"data"`
	Benchmark      *OrderedMap[KpiSet]     `json:"benchmark"`
	Chart          json.RawMessage         `json:"chart"`
	ReportFilename string                  `json:"report_filename"`
}

// DashboardResult is the reduced KPI and chart response.
type DashboardResult struct {
	Data  *OrderedMap[KpiSet] `json:"data"`
	Chart json.RawMessage     `json:"chart"`
}

// AnalysisEvent is published after a report has been written.
type AnalysisEvent struct {
	ID             string    `json:"id"`
	Tickers        []string  `json:"tickers"`
	Analyzed       []string  `json:"analyzed"`
	Days           int       `json:"days"`
	ReportFilename string    `json:"report_filename"`
	GeneratedAt    time.Time `json:"generated_at"`
}
