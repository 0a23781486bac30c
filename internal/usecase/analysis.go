package usecase

import (
	"context"
	"fmt"
	"time"

	"MarketIntel/internal/domain/models"
	domrepo "MarketIntel/internal/domain/repository"
	domsvc "MarketIntel/internal/domain/service"
	"MarketIntel/internal/services/chart"
	"MarketIntel/internal/services/features"
	applogger "MarketIntel/pkg/logger"

	"github.com/google/uuid"
)

// Sources are the text feeds scored for sentiment. Social is a placeholder feed behind the news interface.
type Sources struct {
	News   domrepo.NewsFeed
	Social domrepo.NewsFeed
}

// AnalysisService runs the fetch, KPI, sentiment, chart and report pipeline.
// Tickers are processed one after another.
type AnalysisService struct {
	market    domrepo.MarketData
	sources   Sources
	scorer    domsvc.SentimentScorer
	renderer  domsvc.ReportRenderer
	events    domrepo.EventPublisher
	metrics   domrepo.Metrics
	newsLimit int

	log   *applogger.Logger
	now   func() time.Time
	newID func() string
}

func NewAnalysisService(
	market domrepo.MarketData,
	sources Sources,
	scorer domsvc.SentimentScorer,
	renderer domsvc.ReportRenderer,
	events domrepo.EventPublisher,
	metrics domrepo.Metrics,
	newsLimit int,
) *AnalysisService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &AnalysisService{
		market:    market,
		sources:   sources,
		scorer:    scorer,
		renderer:  renderer,
		events:    events,
		metrics:   metrics,
		newsLimit: newsLimit,
		log:       applogger.Nop(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *AnalysisService) SetLogger(l *applogger.Logger) {
	if l != nil {
		s.log = l
	}
}

// CompetitiveAnalysis returns KPIs, sentiment and news per ticker with a benchmark table,
// a chart and the name of the written report.
func (s *AnalysisService) CompetitiveAnalysis(ctx context.Context, req models.TickerRequest) (*models.AnalysisResult, error) {
	start := time.Now()
	defer func() { s.metrics.RecordLatency("competitive_analysis", time.Since(start).Seconds()) }()

	if len(req.Tickers) == 0 {
		return nil, ErrNoTickers
	}

	series, err := s.fetchSeries(ctx, req.Tickers, req.Days)
	if err != nil {
		return nil, err
	}

	data := models.NewOrderedMap[models.TickerData]()
	bench := models.NewOrderedMap[models.KpiSet]()
	for _, e := range series.Entries() {
		ticker := e.Key
		kpis := features.ComputeKPIs(e.Value)
		bench.Set(ticker, kpis)
		s.log.Debug("kpis computed",
			applogger.String("ticker", ticker),
			applogger.Int("points", e.Value.Len()),
			applogger.Float64("price_change_pct", kpis.PriceChangePercentage),
			applogger.Float64("sharpe", kpis.SharpeRatio),
		)

		td := models.NewTickerData(kpis)
		news := s.feed(ctx, models.SourceNews, s.sources.News, ticker, s.newsLimit)
		td.News = news
		td.Sentiment[models.SourceNews] = s.score(ctx, models.SourceNews, ticker, titles(news))
		posts := s.feed(ctx, models.SourceSocial, s.sources.Social, ticker, 0)
		td.Sentiment[models.SourceSocial] = s.score(ctx, models.SourceSocial, ticker, titles(posts))
		data.Set(ticker, td)
	}

	chartDoc, err := chart.Build(series, bench).JSON()
	if err != nil {
		s.metrics.RecordError("chart")
		return nil, err
	}

	filename, err := s.renderer.Render(ctx, req.Tickers, data, bench)
	if err != nil {
		s.metrics.RecordError("report")
		s.log.Error("report write failed", applogger.Strings("tickers", req.Tickers), applogger.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrReportWrite, err)
	}
	s.log.Info("report written",
		applogger.String("filename", filename),
		applogger.Strings("tickers", req.Tickers),
		applogger.Bool("partial", series.Len() < len(req.Tickers)),
	)

	s.publish(ctx, req, series.Keys(), filename)
	s.metrics.RecordAnalysis()

	return &models.AnalysisResult{
		Data:           data,
		Benchmark:      bench,
		Chart:          chartDoc,
		ReportFilename: filename,
	}, nil
}

// Dashboard runs the fetch and KPI steps only and returns KPIs with the chart.
func (s *AnalysisService) Dashboard(ctx context.Context, tickers []string, days int) (*models.DashboardResult, error) {
	start := time.Now()
	defer func() { s.metrics.RecordLatency("dashboard", time.Since(start).Seconds()) }()

	if len(tickers) == 0 {
		return nil, ErrNoTickers
	}

	series, err := s.fetchSeries(ctx, tickers, days)
	if err != nil {
		return nil, err
	}

	kpis := models.NewOrderedMap[models.KpiSet]()
	for _, e := range series.Entries() {
		kpis.Set(e.Key, features.ComputeKPIs(e.Value))
	}

	chartDoc, err := chart.Build(series, kpis).JSON()
	if err != nil {
		s.metrics.RecordError("chart")
		return nil, err
	}
	return &models.DashboardResult{Data: kpis, Chart: chartDoc}, nil
}

// fetchSeries loads each ticker in request order. Tickers without rows are dropped;
// any provider error aborts with a ProviderError. A repeated ticker is fetched once.
func (s *AnalysisService) fetchSeries(ctx context.Context, tickers []string, days int) (*models.OrderedMap[models.PriceSeries], error) {
	out := models.NewOrderedMap[models.PriceSeries]()
	for _, t := range tickers {
		if _, seen := out.Get(t); seen {
			continue
		}
		opStart := time.Now()
		series, err := Require(s.market.Historical(ctx, t, days)).Get()
		s.metrics.RecordLatency("market_data", time.Since(opStart).Seconds())
		if err != nil {
			s.metrics.RecordError("market_data")
			s.log.Error("market data fetch failed", applogger.String("ticker", t), applogger.Error(err))
			return nil, &ProviderError{Ticker: t, Err: err}
		}
		if series.Empty() {
			s.metrics.RecordDroppedTicker()
			s.log.Warn("no data found for ticker", applogger.String("ticker", t))
			continue
		}
		out.Set(t, series)
	}
	if out.Len() == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

func (s *AnalysisService) feed(ctx context.Context, source string, f domrepo.NewsFeed, ticker string, limit int) []models.NewsItem {
	if f == nil {
		return []models.NewsItem{}
	}
	res := Enrich(f.Latest(ctx, ticker, limit)).Or([]models.NewsItem{})
	if !res.OK() {
		s.degraded(source, ticker, res.Err)
	}
	if res.Value == nil {
		return []models.NewsItem{}
	}
	return res.Value
}

// score classifies texts. A failure or a short result degrades to an empty list.
func (s *AnalysisService) score(ctx context.Context, source, ticker string, texts []string) []models.Sentiment {
	if len(texts) == 0 || s.scorer == nil {
		return []models.Sentiment{}
	}
	res := Enrich(s.scorer.Classify(ctx, texts)).Or([]models.Sentiment{})
	if res.OK() && len(res.Value) != len(texts) {
		res = res.Degrade([]models.Sentiment{}, fmt.Errorf("got %d sentiments for %d texts", len(res.Value), len(texts)))
	}
	if !res.OK() {
		s.degraded(source+"_sentiment", ticker, res.Err)
	}
	return res.Value
}

func (s *AnalysisService) degraded(source, ticker string, err error) {
	s.metrics.RecordDegraded(source)
	s.log.Warn("enrichment degraded",
		applogger.String("source", source),
		applogger.String("ticker", ticker),
		applogger.Error(err),
	)
}

func (s *AnalysisService) publish(ctx context.Context, req models.TickerRequest, analyzed []string, filename string) {
	if s.events == nil {
		return
	}
	ev := &models.AnalysisEvent{
		ID:             s.newID(),
		Tickers:        req.Tickers,
		Analyzed:       analyzed,
		Days:           req.Days,
		ReportFilename: filename,
		GeneratedAt:    s.now().UTC(),
	}
	if err := s.events.PublishAnalysis(ctx, ev); err != nil {
		s.metrics.RecordError("event_publish")
		s.log.Warn("analysis event publish failed", applogger.String("id", ev.ID), applogger.Error(err))
	}
}

func titles(items []models.NewsItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

type noopMetrics struct{}

func (noopMetrics) RecordError(string)            {}
func (noopMetrics) RecordLatency(string, float64) {}
func (noopMetrics) RecordDroppedTicker()          {}
func (noopMetrics) RecordDegraded(string)         {}
func (noopMetrics) RecordAnalysis()               {}
