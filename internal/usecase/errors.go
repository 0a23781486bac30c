package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNoTickers   = errors.New("at least one ticker is required")
	ErrNoData      = errors.New("no valid data found for any of the tickers")
	ErrReportWrite = errors.New("failed to write report")
)

// ProviderError reports a market data failure for one ticker. It aborts the request.
type ProviderError struct {
	Ticker string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("failed to fetch data for %s: %v", e.Ticker, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
