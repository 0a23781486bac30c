package cache

import (
	"context"
	"fmt"
	"time"
)

// BytesCache is a minimal cache API storing raw bytes with TTL.
type BytesCache interface {
	GetBytes(ctx context.Context, key string) (b []byte, ok bool, err error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardKey builds the cache key for a dashboard response.
func DashboardKey(tickers string, days int) string {
	return fmt.Sprintf("dashboard:%s:%d", tickers, days)
}
