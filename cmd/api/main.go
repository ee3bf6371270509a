package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/itemmock/docs/swagger"
	"github.com/ghuser/itemmock/pkg/app"
	"github.com/ghuser/itemmock/pkg/config"
	"github.com/ghuser/itemmock/pkg/events"
	"github.com/ghuser/itemmock/pkg/httpx"
	"github.com/ghuser/itemmock/pkg/logger"
	"github.com/ghuser/itemmock/pkg/telemetry"
	itemApi "github.com/ghuser/itemmock/services/item/application/api"
	"github.com/ghuser/itemmock/services/item/application/listeners"
	"github.com/ghuser/itemmock/services/item/infrastructure/persistence/memory"
)

// @title					Item Mock API
// @version				1.0
// @description			In-memory marketplace item service: create items, read them back, list by seller, read statistics.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8000
// @BasePath				/api/1
// @schemes				http
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry: OTel tracing + metrics
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(cfg, log)
	defer eventBus.Close() //nolint:errcheck

	if err := listeners.NewActivityLog(log).Register(ctx, eventBus); err != nil {
		log.Error("failed to register event listeners", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Logger:   log,
		Items:    memory.NewItemRepository(),
		EventBus: eventBus,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Otel:     otelhttp.NewMiddleware(cfg.ServiceName),
			Logger:   logger.Middleware(log),
		},
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		"store":     appConfig.Items,
		"event_bus": eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	itemApi.Mount(r, appConfig)

	srv, err := httpx.Listen(cfg.HTTPAddr, r)
	if err != nil {
		log.Error("failed to listen", "addr", cfg.HTTPAddr, "error", err)
		os.Exit(1) //nolint:gocritic
	}
	srv.Start()
	log.Info("server listening", "addr", srv.Addr(), "env", cfg.Environment)

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-srv.Err():
		if err != nil {
			log.Error("server error", "error", err)
			exitCode = 1
		}
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		exitCode = 1
	}
	log.Info("server stopped")

	if exitCode != 0 {
		cancel()
		stop()
		os.Exit(exitCode) //nolint:gocritic // deferred flushes are best-effort on failure
	}
}
