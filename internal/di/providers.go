package di

import (
	"fmt"
	"io"
	"time"

	"MarketIntel/internal/domain/repository"
	"MarketIntel/internal/domain/service"
	"MarketIntel/internal/handler/api"
	internalrepo "MarketIntel/internal/repository"
	icache "MarketIntel/internal/service/cache"
	"MarketIntel/internal/service/finnhub"
	imetrics "MarketIntel/internal/service/metrics"
	"MarketIntel/internal/service/ratelimit"
	"MarketIntel/internal/service/report"
	"MarketIntel/internal/service/social"
	"MarketIntel/internal/service/yahoo"
	"MarketIntel/internal/services/analytics"
	"MarketIntel/internal/usecase"
	"MarketIntel/pkg/config"
	xhttp "MarketIntel/pkg/http"
	"MarketIntel/pkg/http/middleware"
	pkgkafka "MarketIntel/pkg/kafka"
	applogger "MarketIntel/pkg/logger"
	"MarketIntel/pkg/metrics"
	"MarketIntel/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// ProvideKafkaProducer creates a Kafka producer, or nil when events are disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithDelivery(-1, 3),
		pkgkafka.WithBatching(0, 0, 50*time.Millisecond),
		pkgkafka.WithHashByKey(true),
		pkgkafka.WithAutoCreateTopic(cfg.Environment != "production"),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideLogger builds the application logger. Error logs are shipped to Kafka when a producer exists.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          cfg.Events.LogTopic,
			Publisher:      producer,
		})
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	imetrics.Register(prometheus.DefaultRegisterer)
	return metrics.New()
}

// ProvideFinnhubClient creates the Finnhub REST client used for candles and news.
func ProvideFinnhubClient(cfg *config.Config) *finnhub.Client {
	return finnhub.New(
		cfg.Finnhub.BaseURL,
		cfg.Finnhub.APIKey,
		finnhub.WithHTTPClient(xhttp.NewClient(xhttp.WithTimeout(cfg.Finnhub.Timeout))),
		finnhub.WithNewsDays(cfg.Finnhub.NewsDays),
	)
}

// ProvideMarketData selects the daily history source. News always comes from Finnhub.
func ProvideMarketData(cfg *config.Config, c *finnhub.Client) repository.MarketData {
	if cfg.Market.Provider == "yahoo" {
		return yahoo.New()
	}
	return c
}

// ProvideSources pairs Finnhub news with the synthetic social feed.
func ProvideSources(c *finnhub.Client) usecase.Sources {
	return usecase.Sources{News: c, Social: social.NewSyntheticFeed()}
}

// ProvideSentimentScorer creates the HTTP scorer, or a disabled one without an endpoint.
func ProvideSentimentScorer(cfg *config.Config) service.SentimentScorer {
	if cfg.Sentiment.URL == "" {
		return analytics.DisabledScorer{}
	}
	return analytics.NewHTTPSentimentScorer(cfg.Sentiment.URL, cfg.Sentiment.Token, cfg.Sentiment.Timeout)
}

// ProvideReportStore creates the report directory store.
func ProvideReportStore(cfg *config.Config) (*internalrepo.FileReportStore, error) {
	return internalrepo.NewFileReportStore(cfg.Report.Dir)
}

// ProvideReportRenderer parses the report template.
func ProvideReportRenderer(store *internalrepo.FileReportStore, cfg *config.Config) (service.ReportRenderer, error) {
	return report.NewRenderer(store, cfg.Report.Template)
}

// ProvideEventPublisher publishes analysis events to Kafka, or drops them without a producer.
func ProvideEventPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.EventPublisher {
	if producer == nil {
		return internalrepo.NoopPublisher{}
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Events.Topic)
}

// ProvideDashboardCache returns the configured cache backend, or nil when caching is off.
func ProvideDashboardCache(cfg *config.Config) icache.BytesCache {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Backend == "redis" {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   "marketintel:",
		})
	}
	c := icache.NewTTLCache()
	c.RunJanitor(cfg.Cache.TTL)
	return c
}

// ProvideRateLimiter returns a limiter, or nil when rate limiting is off.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.Server.RateLimit.Enabled {
		return nil
	}
	l := ratelimit.New(cfg.Server.RateLimit.Capacity, cfg.Server.RateLimit.RefillPerSec)
	l.RunJanitor(time.Minute)
	return l
}

// ProvideAnalysisService creates the analysis use case.
func ProvideAnalysisService(
	market repository.MarketData,
	sources usecase.Sources,
	scorer service.SentimentScorer,
	renderer service.ReportRenderer,
	events repository.EventPublisher,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.AnalysisService {
	svc := usecase.NewAnalysisService(market, sources, scorer, renderer, events, m, cfg.Finnhub.NewsLimit)
	svc.SetLogger(logger.With(applogger.String("component", "analysis")))
	return svc
}

// ProvideHTTPHandler creates the Echo handler.
func ProvideHTTPHandler(
	logger *applogger.Logger,
	svc *usecase.AnalysisService,
	store *internalrepo.FileReportStore,
	cache icache.BytesCache,
	rl *ratelimit.Limiter,
	cfg *config.Config,
) *api.AnalysisEchoHandler {
	h := api.NewAnalysisEchoHandler(logger.With(applogger.String("component", "http")), svc, store)
	if cache != nil {
		h.SetCache(cache, cfg.Cache.TTL)
	}
	if rl != nil {
		h.SetRateLimiter(rl)
	}
	return h
}

// ProvideHTTPServer creates the HTTP server.
func ProvideHTTPServer(cfg *config.Config, logger *applogger.Logger, h *api.AnalysisEchoHandler) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(logger),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(
			cfg.Metrics.Path,
			middleware.NewHTTPMetrics(prometheus.DefaultRegisterer, "marketintel"),
			prometheus.DefaultGatherer,
		))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	logger *applogger.Logger,
	srv *xhttp.Server,
	events repository.EventPublisher,
	cache icache.BytesCache,
	rl *ratelimit.Limiter,
) *server.App {
	var closers []io.Closer
	if c, ok := cache.(io.Closer); ok {
		closers = append(closers, c)
	}
	if rl != nil {
		closers = append(closers, rl)
	}
	return server.New(logger, srv, events, closers...)
}
