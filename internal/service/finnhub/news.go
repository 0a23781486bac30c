package finnhub

import (
	"context"
	"net/url"
	"sort"
	"time"

	"MarketIntel/internal/domain/models"
	"MarketIntel/pkg/util"
)

type newsItem struct {
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// Latest returns up to limit company news items, newest first. limit <= 0 returns everything.
func (c *Client) Latest(ctx context.Context, ticker string, limit int) ([]models.NewsItem, error) {
	from, to := util.TrailingWindow(c.now(), c.newsDays)
	q := url.Values{}
	q.Set("symbol", ticker)
	q.Set("from", util.FormatDate(from))
	q.Set("to", util.FormatDate(to))

	var raw []newsItem
	if err := c.get(ctx, "finnhub_news", "/company-news", q, &raw); err != nil {
		return []models.NewsItem{}, err
	}

	sort.SliceStable(raw, func(i, j int) bool { return raw[i].Datetime > raw[j].Datetime })
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	out := make([]models.NewsItem, 0, len(raw))
	for _, it := range raw {
		out = append(out, models.NewsItem{
			Created: time.Unix(it.Datetime, 0).UTC(),
			Title:   it.Headline,
		})
	}
	return out, nil
}
