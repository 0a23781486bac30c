package finnhub

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"MarketIntel/internal/domain/models"
	"MarketIntel/pkg/util"
)

const (
	statusOK     = "ok"
	statusNoData = "no_data"
)

type candleResponse struct {
	Close  []float64 `json:"c"`
	Volume []float64 `json:"v"`
	Time   []int64   `json:"t"`
	Status string    `json:"s"`
	Error  string    `json:"error"`
}

// Historical returns daily closes and volumes over [now-days, now], ascending by date.
// A "no_data" reply yields an empty series and a nil error.
func (c *Client) Historical(ctx context.Context, ticker string, days int) (models.PriceSeries, error) {
	series := models.PriceSeries{Ticker: ticker, Points: []models.PricePoint{}}

	from, to := util.TrailingWindow(c.now(), days)
	q := url.Values{}
	q.Set("symbol", ticker)
	q.Set("resolution", "D")
	q.Set("from", strconv.FormatInt(from.Unix(), 10))
	q.Set("to", strconv.FormatInt(to.Unix(), 10))

	var resp candleResponse
	if err := c.get(ctx, "finnhub_candles", "/stock/candle", q, &resp); err != nil {
		return series, err
	}
	if resp.Error != "" {
		return series, fmt.Errorf("finnhub candles %s: %s", ticker, resp.Error)
	}

	switch resp.Status {
	case statusNoData:
		return series, nil
	case statusOK, "":
	default:
		return series, fmt.Errorf("finnhub candles %s: unexpected status %q", ticker, resp.Status)
	}

	n := minLen(len(resp.Time), len(resp.Close), len(resp.Volume))
	points := make([]models.PricePoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, models.PricePoint{
			Date:   time.Unix(resp.Time[i], 0).UTC(),
			Close:  resp.Close[i],
			Volume: resp.Volume[i],
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	series.Points = points
	return series, nil
}

func minLen(ns ...int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m
}
