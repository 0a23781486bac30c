package social

import (
	"context"
	"fmt"
	"time"

	"MarketIntel/internal/domain/models"
	drepo "MarketIntel/internal/domain/repository"
)

var _ drepo.NewsFeed = (*SyntheticFeed)(nil)

var templates = []string{
	"%s stock is gaining traction!",
	"Positive outlook for %s",
	"Is %s the next big thing?",
}

// SyntheticFeed stands in for a social source with fixed posts templated on the ticker.
type SyntheticFeed struct {
	now func() time.Time
}

func NewSyntheticFeed() *SyntheticFeed {
	return &SyntheticFeed{now: time.Now}
}

func (f *SyntheticFeed) Latest(_ context.Context, ticker string, limit int) ([]models.NewsItem, error) {
	ts := f.now().UTC()
	out := make([]models.NewsItem, 0, len(templates))
	for _, tpl := range templates {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, models.NewsItem{Created: ts, Title: fmt.Sprintf(tpl, ticker)})
	}
	return out, nil
}
