package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type TickerRequest struct {
	Tickers []string `json:"tickers" validate:"required,min=1,dive,required"`
	Days    int      `json:"days" default:"30" validate:"gte=1,lte=3650"`
}

type DashboardRequest struct {
	Tickers string `param:"tickers" validate:"required"`
	Days    int    `query:"days" default:"30" validate:"gte=1,lte=3650"`
}

type ReportRequest struct {
	Filename string `param:"filename" validate:"required"`
}
