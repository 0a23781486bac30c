//go:build wireinject
// +build wireinject

package di

import (
	"MarketIntel/pkg/config"
	"MarketIntel/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Infrastructure clients
		ProvideKafkaProducer,
		ProvideLogger,
		ProvideMetrics,
		ProvideDashboardCache,
		ProvideRateLimiter,

		// Gateways and repositories
		ProvideFinnhubClient,
		ProvideMarketData,
		ProvideSources,
		ProvideSentimentScorer,
		ProvideReportStore,
		ProvideReportRenderer,
		ProvideEventPublisher,

		// Use cases
		ProvideAnalysisService,

		// Transport
		ProvideHTTPHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
