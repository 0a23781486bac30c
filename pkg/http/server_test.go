package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"MarketIntel/pkg/http/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
}

func TestServerRegistersRoutesAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewServer(pingHandler{},
		WithPort(9999),
		WithMetrics("/metrics", middleware.NewHTTPMetrics(reg, "test"), reg),
	)
	assert.Equal(t, "0.0.0.0:9999", s.Addr())

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "pong", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_requests_total")
}

func TestServerCORSToggle(t *testing.T) {
	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "http://dash.local")
		return req
	}

	rec := httptest.NewRecorder()
	NewServer(pingHandler{}).Echo().ServeHTTP(rec, newReq())
	assert.Equal(t, "http://dash.local", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = httptest.NewRecorder()
	NewServer(pingHandler{}, WithCORS(false)).Echo().ServeHTTP(rec, newReq())
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
