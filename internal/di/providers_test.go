package di

import (
	"context"
	"testing"
	"time"

	internalrepo "MarketIntel/internal/repository"
	icache "MarketIntel/internal/service/cache"
	"MarketIntel/internal/service/finnhub"
	"MarketIntel/internal/service/yahoo"
	"MarketIntel/internal/services/analytics"
	"MarketIntel/pkg/config"
	xhttp "MarketIntel/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalProvidersDisabledByDefault(t *testing.T) {
	cfg := &config.Config{}

	producer, err := ProvideKafkaProducer(cfg)
	require.NoError(t, err)
	assert.Nil(t, producer)

	assert.IsType(t, internalrepo.NoopPublisher{}, ProvideEventPublisher(producer, cfg))
	assert.Nil(t, ProvideDashboardCache(cfg))
	assert.Nil(t, ProvideRateLimiter(cfg))
	assert.IsType(t, analytics.DisabledScorer{}, ProvideSentimentScorer(cfg))
}

func TestProvideMarketDataByProvider(t *testing.T) {
	cfg := &config.Config{}
	fc := finnhub.New("", "key")

	cfg.Market.Provider = "finnhub"
	assert.Same(t, fc, ProvideMarketData(cfg, fc))

	cfg.Market.Provider = "yahoo"
	assert.IsType(t, &yahoo.Client{}, ProvideMarketData(cfg, fc))
}

func TestProvideDashboardCacheBackends(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "memory"
	mem := ProvideDashboardCache(cfg)
	require.IsType(t, &icache.TTLCache{}, mem)
	assert.NoError(t, mem.(*icache.TTLCache).Close())

	cfg.Cache.Backend = "redis"
	cfg.Cache.Redis.Addr = "localhost:6379"
	c := ProvideDashboardCache(cfg)
	rc, ok := c.(*icache.RedisCache)
	require.True(t, ok)
	assert.NoError(t, rc.Close())
}

func TestProvideAppShutsDownJanitors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "memory"
	cfg.Cache.TTL = time.Millisecond
	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.Capacity = 1
	cfg.Server.RateLimit.RefillPerSec = 1

	srv := xhttp.NewServer(nil, xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))
	app := ProvideApp(nil, srv, internalrepo.NoopPublisher{}, ProvideDashboardCache(cfg), ProvideRateLimiter(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, app.RunContext(ctx))
}

func TestProvideReportStoreAndRenderer(t *testing.T) {
	cfg := &config.Config{}
	cfg.Report.Dir = t.TempDir()

	store, err := ProvideReportStore(cfg)
	require.NoError(t, err)
	r, err := ProvideReportRenderer(store, cfg)
	require.NoError(t, err)
	assert.NotNil(t, r)
}
