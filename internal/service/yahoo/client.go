package yahoo

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"MarketIntel/internal/domain/models"
	drepo "MarketIntel/internal/domain/repository"
	imetrics "MarketIntel/internal/service/metrics"
	"MarketIntel/pkg/util"

	yfmodels "github.com/wnjoon/go-yfinance/pkg/models"
	"github.com/wnjoon/go-yfinance/pkg/ticker"
)

var _ drepo.MarketData = (*Client)(nil)

// historyFunc loads daily bars for one symbol.
type historyFunc func(symbol string, params yfmodels.HistoryParams) ([]yfmodels.Bar, error)

// Option configures Client.
type Option func(*Client)

// Client reads daily history from Yahoo Finance through go-yfinance.
type Client struct {
	history historyFunc
	now     func() time.Time
}

// New creates a Yahoo Finance market data client.
func New(opts ...Option) *Client {
	c := &Client{history: fetchHistory, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithClock overrides the time source used for the trailing window.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func withHistory(h historyFunc) Option {
	return func(c *Client) { c.history = h }
}

func fetchHistory(symbol string, params yfmodels.HistoryParams) ([]yfmodels.Bar, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return nil, fmt.Errorf("create ticker: %w", err)
	}
	defer t.Close()
	return t.History(params)
}

// Historical returns daily closes and volumes over [now-days, now], ascending by date.
// No bars in the window yields an empty series and a nil error.
func (c *Client) Historical(ctx context.Context, tkr string, days int) (models.PriceSeries, error) {
	series := models.PriceSeries{Ticker: tkr, Points: []models.PricePoint{}}
	if err := ctx.Err(); err != nil {
		return series, err
	}

	start := time.Now()
	bars, err := c.history(tkr, yfmodels.HistoryParams{
		Period:     periodFor(days),
		Interval:   "1d",
		AutoAdjust: true,
	})
	imetrics.Observe("yahoo_history", start, err)
	if err != nil {
		return series, fmt.Errorf("yahoo history %s: %w", tkr, err)
	}

	from, _ := util.TrailingWindow(c.now(), days)
	points := make([]models.PricePoint, 0, len(bars))
	for _, b := range bars {
		if b.Date.Before(from) || math.IsNaN(b.Close) || math.IsInf(b.Close, 0) {
			continue
		}
		points = append(points, models.PricePoint{
			Date:   b.Date.UTC(),
			Close:  b.Close,
			Volume: float64(b.Volume),
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	series.Points = points
	return series, nil
}

// periodFor picks the shortest Yahoo range covering days calendar days.
func periodFor(days int) string {
	switch {
	case days <= 5:
		return "5d"
	case days <= 31:
		return "1mo"
	case days <= 92:
		return "3mo"
	case days <= 183:
		return "6mo"
	case days <= 366:
		return "1y"
	case days <= 731:
		return "2y"
	case days <= 1827:
		return "5y"
	case days <= 3653:
		return "10y"
	default:
		return "max"
	}
}
