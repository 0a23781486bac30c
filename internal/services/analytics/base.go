package analytics

import (
	"context"
	"fmt"
	"time"

	xhttp "MarketIntel/pkg/http"
)

const defaultTimeout = 15 * time.Second

// HTTPServiceBase holds the client and endpoint shared by inference HTTP clients.
type HTTPServiceBase struct {
	url    string
	token  string
	client *xhttp.Client
}

// NewHTTPServiceBase builds an HTTP client for url. An empty token sends no Authorization header.
func NewHTTPServiceBase(url, token string, timeout time.Duration) *HTTPServiceBase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPServiceBase{
		url:    url,
		token:  token,
		client: xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// PostJSON posts payload to the endpoint and decodes the JSON reply into dest.
func (b *HTTPServiceBase) PostJSON(ctx context.Context, payload interface{}, dest interface{}) error {
	if b.client == nil || b.url == "" {
		return fmt.Errorf("inference http client not initialized")
	}
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if b.token != "" {
		headers["Authorization"] = "Bearer " + b.token
	}
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     b.url,
		Headers: headers,
		Body:    payload,
	}, dest)
	if err != nil {
		return fmt.Errorf("post %s: %w", b.url, err)
	}
	return nil
}
