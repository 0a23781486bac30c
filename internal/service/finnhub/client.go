package finnhub

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	drepo "MarketIntel/internal/domain/repository"
	imetrics "MarketIntel/internal/service/metrics"
	xhttp "MarketIntel/pkg/http"
)

const (
	DefaultBaseURL  = "https://finnhub.io/api/v1"
	DefaultNewsDays = 30

	tokenHeader = "X-Finnhub-Token"
)

var (
	_ drepo.MarketData = (*Client)(nil)
	_ drepo.NewsFeed   = (*Client)(nil)
)

// Option configures Client.
type Option func(*Client)

// Client reads daily candles and company news from the Finnhub REST API.
type Client struct {
	baseURL  string
	apiKey   string
	newsDays int
	http     *xhttp.Client
	now      func() time.Time
}

// New creates a Finnhub REST client.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		newsDays: DefaultNewsDays,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = xhttp.NewClient(xhttp.WithTimeout(10 * time.Second))
	}
	return c
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *xhttp.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithClock overrides the time source used for request windows.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithNewsDays sets how far back company news is searched.
func WithNewsDays(days int) Option {
	return func(c *Client) {
		if days > 0 {
			c.newsDays = days
		}
	}
}

func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, dest interface{}) error {
	start := time.Now()
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		Headers:     map[string]string{tokenHeader: c.apiKey},
		QueryParams: query,
		Body:        nil,
	}, dest)
	imetrics.Observe(endpoint, start, err)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) {
			return fmt.Errorf("finnhub %s: status %d: %w", path, se.StatusCode, err)
		}
		return fmt.Errorf("finnhub %s: %w", path, err)
	}
	return nil
}
