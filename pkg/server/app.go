package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	domrepo "MarketIntel/internal/domain/repository"
	xhttp "MarketIntel/pkg/http"
	applogger "MarketIntel/pkg/logger"
)

// App encapsulates the application lifecycle.
type App struct {
	logger     *applogger.Logger
	httpServer *xhttp.Server
	events     domrepo.EventPublisher
	closers    []io.Closer
}

// New creates a new App. closers are closed in order on shutdown after the HTTP server stops.
func New(logger *applogger.Logger, httpServer *xhttp.Server, events domrepo.EventPublisher, closers ...io.Closer) *App {
	if logger == nil {
		logger = applogger.Nop()
	}
	return &App{
		logger:     logger,
		httpServer: httpServer,
		events:     events,
		closers:    closers,
	}
}

// Server returns the HTTP server.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the HTTP server and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Warn("event publisher close error", applogger.Error(err))
		}
	}

	for _, c := range a.closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			a.logger.Warn("close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	a.logger.RemoveCollector()
	return firstErr
}
