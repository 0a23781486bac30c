package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	models "MarketIntel/internal/domain/models"
	domrepo "MarketIntel/internal/domain/repository"
	icache "MarketIntel/internal/service/cache"
	"MarketIntel/internal/service/ratelimit"
	"MarketIntel/internal/usecase"
	xhttp "MarketIntel/pkg/http"
	xlogger "MarketIntel/pkg/logger"
	"MarketIntel/pkg/util"

	"github.com/labstack/echo/v4"
)

// Analyzer is the usecase surface served over HTTP.
type Analyzer interface {
	CompetitiveAnalysis(ctx context.Context, req models.TickerRequest) (*models.AnalysisResult, error)
	Dashboard(ctx context.Context, tickers []string, days int) (*models.DashboardResult, error)
}

var _ Analyzer = (*usecase.AnalysisService)(nil)

// AnalysisEchoHandler serves the analysis, dashboard and report download endpoints.
type AnalysisEchoHandler struct {
	logger  *xlogger.Logger
	svc     Analyzer
	reports domrepo.ReportStore

	cache    icache.BytesCache
	cacheTTL time.Duration
	rl       *ratelimit.Limiter
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, svc Analyzer, reports domrepo.ReportStore) *AnalysisEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &AnalysisEchoHandler{logger: logger, svc: svc, reports: reports}
}

// SetCache enables dashboard response caching for ttl.
func (h *AnalysisEchoHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	h.cacheTTL = ttl
}

// SetRateLimiter limits the analysis endpoints per client address.
func (h *AnalysisEchoHandler) SetRateLimiter(rl *ratelimit.Limiter) { h.rl = rl }

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/competitive_analysis", h.CompetitiveAnalysis, h.limit("competitive_analysis"))
	e.GET("/dashboard/:tickers", h.Dashboard, h.limit("dashboard"))
	e.GET("/dashboard/competitive/:tickers", h.Dashboard, h.limit("dashboard"))
	// Without this the bare alias prefix would be read as a ticker named "competitive".
	e.GET("/dashboard/competitive", h.MissingTickers)
	e.GET("/reports/:filename", h.Report)
}

func (h *AnalysisEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *AnalysisEchoHandler) CompetitiveAnalysis(c echo.Context) error {
	req := &models.TickerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.CompetitiveAnalysis(c.Request().Context(), *req)
	if err != nil {
		h.logFailure("competitive_analysis", req.Tickers, err)
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.RawResponse(c, res)
}

func (h *AnalysisEchoHandler) Dashboard(c echo.Context) error {
	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tickers := util.SplitTickers(req.Tickers)
	if len(tickers) == 0 {
		return xhttp.AppErrorResponse(c, toAppError(usecase.ErrNoTickers))
	}

	cacheKey := icache.DashboardKey(strings.Join(tickers, ","), req.Days)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(c.Request().Context(), cacheKey); err != nil {
			h.logger.Warn("dashboard cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("dashboard cache_hit", xlogger.String("key", cacheKey))
			return xhttp.RawJSONResponse(c, b)
		}
	}

	res, err := h.svc.Dashboard(c.Request().Context(), tickers, req.Days)
	if err != nil {
		h.logFailure("dashboard", tickers, err)
		return xhttp.AppErrorResponse(c, toAppError(err))
	}

	if h.cache == nil {
		return xhttp.RawResponse(c, res)
	}
	b, err := json.Marshal(res)
	if err != nil {
		h.logger.Error("dashboard encode error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	if err := h.cache.SetBytes(c.Request().Context(), cacheKey, b, h.cacheTTL); err != nil {
		h.logger.Warn("dashboard cache_set_error", xlogger.Error(err))
	}
	return xhttp.RawJSONResponse(c, b)
}

// MissingTickers rejects dashboard paths that carry no ticker segment.
func (h *AnalysisEchoHandler) MissingTickers(c echo.Context) error {
	return xhttp.AppErrorResponse(c, toAppError(usecase.ErrNoTickers))
}

func (h *AnalysisEchoHandler) Report(c echo.Context) error {
	req := &models.ReportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rc, err := h.reports.Open(c.Request().Context(), req.Filename)
	if err != nil {
		switch {
		case errors.Is(err, domrepo.ErrInvalidReportName):
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError("invalid report name").WithParam("filename", req.Filename))
		case errors.Is(err, domrepo.ErrReportNotFound):
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("report %s not found", req.Filename))
		default:
			h.logger.Error("report open error", xlogger.String("filename", req.Filename), xlogger.Error(err))
			return xhttp.InternalServerErrorResponse(c)
		}
	}
	defer rc.Close()

	return xhttp.AttachmentResponse(c, req.Filename, echo.MIMETextHTMLCharsetUTF8, rc)
}

func (h *AnalysisEchoHandler) limit(route string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if h.rl != nil && !h.rl.Allow(c.RealIP()+":"+route) {
				h.logger.Warn(route+" rate_limited", xlogger.String("remote", c.RealIP()))
				return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limited"))
			}
			return next(c)
		}
	}
}

func (h *AnalysisEchoHandler) logFailure(op string, tickers []string, err error) {
	fields := []xlogger.Field{xlogger.Strings("tickers", tickers), xlogger.Error(err)}
	if xhttp.StatusOf(toAppError(err)) >= http.StatusInternalServerError {
		h.logger.Error(op+" failed", fields...)
		return
	}
	h.logger.Info(op+" rejected", fields...)
}

// toAppError maps usecase errors to HTTP errors.
func toAppError(err error) *xhttp.AppError {
	var pe *usecase.ProviderError
	switch {
	case errors.Is(err, usecase.ErrNoTickers):
		return xhttp.BadRequestError(err.Error()).WithError(err)
	case errors.Is(err, usecase.ErrNoData):
		return xhttp.NotFoundError(err.Error()).WithError(err)
	case errors.As(err, &pe):
		return xhttp.InternalErrorf("failed to fetch data for %s", pe.Ticker).WithParam("ticker", pe.Ticker).WithError(err)
	case errors.Is(err, usecase.ErrReportWrite):
		return xhttp.InternalError(usecase.ErrReportWrite.Error()).WithError(err)
	default:
		return xhttp.InternalError("Something went wrong").WithError(err)
	}
}
