package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"MarketIntel/internal/domain/models"
	domsvc "MarketIntel/internal/domain/service"
	imetrics "MarketIntel/internal/service/metrics"
)

// ErrScorerDisabled is returned when no inference endpoint is configured.
var ErrScorerDisabled = errors.New("sentiment scorer disabled")

// HTTPSentimentScorer calls a text-classification inference endpoint.
type HTTPSentimentScorer struct{ base *HTTPServiceBase }

func NewHTTPSentimentScorer(url, token string, timeout time.Duration) *HTTPSentimentScorer {
	return &HTTPSentimentScorer{base: NewHTTPServiceBase(url, token, timeout)}
}

type classifyRequest struct {
	Inputs []string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify returns one result per text in order. Empty input makes no call.
func (s *HTTPSentimentScorer) Classify(ctx context.Context, texts []string) ([]models.Sentiment, error) {
	if len(texts) == 0 {
		return []models.Sentiment{}, nil
	}

	start := time.Now()
	var raw json.RawMessage
	err := s.base.PostJSON(ctx, classifyRequest{Inputs: texts}, &raw)
	imetrics.Observe("sentiment", start, err)
	if err != nil {
		return []models.Sentiment{}, fmt.Errorf("classify: %w", err)
	}

	out, err := decodeSentiments(raw)
	if err != nil {
		return []models.Sentiment{}, err
	}
	if len(out) != len(texts) {
		return []models.Sentiment{}, fmt.Errorf("classify: got %d results for %d texts", len(out), len(texts))
	}
	return out, nil
}

// decodeSentiments accepts a flat [{label,score}] list or a per-text [[{label,score}...]] list,
// keeping the highest scoring label for each text.
func decodeSentiments(raw json.RawMessage) ([]models.Sentiment, error) {
	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err == nil {
		out := make([]models.Sentiment, 0, len(flat))
		for _, ls := range flat {
			out = append(out, models.Sentiment{Label: ls.Label, Score: ls.Score})
		}
		return out, nil
	}

	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, fmt.Errorf("decode sentiment response: %w", err)
	}
	out := make([]models.Sentiment, 0, len(nested))
	for i, cands := range nested {
		if len(cands) == 0 {
			return nil, fmt.Errorf("decode sentiment response: no labels for text %d", i)
		}
		best := cands[0]
		for _, c := range cands[1:] {
			if c.Score > best.Score {
				best = c
			}
		}
		out = append(out, models.Sentiment{Label: best.Label, Score: best.Score})
	}
	return out, nil
}

// DisabledScorer always fails so callers degrade to empty sentiment.
type DisabledScorer struct{}

func (DisabledScorer) Classify(context.Context, []string) ([]models.Sentiment, error) {
	return []models.Sentiment{}, ErrScorerDisabled
}

var (
	_ domsvc.SentimentScorer = (*HTTPSentimentScorer)(nil)
	_ domsvc.SentimentScorer = DisabledScorer{}
)
