package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordermanager/cmd"
	httpin "ordermanager/internal/adapters/in/http"
	"ordermanager/internal/docs"
	"ordermanager/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err = docs.Load(ctx); err != nil {
		log.Fatalf("Invalid API document: %v", err)
	}

	publisher, closePublisher, err := cmd.NewEventPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	defer closeWith(logger, "event publisher", closePublisher)

	uowFactory, closeStore, err := cmd.NewUnitOfWorkFactory(ctx, configs, publisher, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeWith(logger, "storage", closeStore)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	app := cmd.NewCompositionRoot(configs, uowFactory, appMetrics, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := httpin.NewRouter(app.CreateServer(), httpin.RouterConfig{
		BasePath: configs.HTTPBasePath,
		Metrics:  appMetrics,
		Logger:   logger,
	})
	serverErr := startWebServer(e, configs, logger)

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		logger.Error("HTTP server failed", "error", err)
	}

	logger.Info("Shutting down")
	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}

// startWebServer serves in the background. The channel receives the error
// that stopped the server unless it was shut down.
func startWebServer(e *echo.Echo, configs cmd.Config, logger *slog.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", "port", configs.HTTPPort, "base_path", configs.HTTPBasePath)
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func closeWith(logger *slog.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("Failed to close "+name, "error", err)
	}
}
