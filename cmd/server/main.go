// Package main is the entry point for the whereto flight ranking service.
//
//	@title						Whereto Flight Ranking API
//	@version					1.0.0
//	@description				Ranks the flight schedules of a route by flight hours, preferred carrier and route distance.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and a JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/kachieze/whereto/docs"

	// Application layers
	"github.com/kachieze/whereto/internal/adapter/distance"
	flighthttp "github.com/kachieze/whereto/internal/adapter/http"
	"github.com/kachieze/whereto/internal/adapter/http/middleware"
	"github.com/kachieze/whereto/internal/adapter/provider/jsonfile"
	"github.com/kachieze/whereto/internal/config"
	"github.com/kachieze/whereto/internal/domain"
	"github.com/kachieze/whereto/internal/infrastructure/auth"
	"github.com/kachieze/whereto/internal/infrastructure/logger"
	"github.com/kachieze/whereto/internal/infrastructure/metrics"
	"github.com/kachieze/whereto/internal/infrastructure/timeutil"
	"github.com/kachieze/whereto/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	logger.Init(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		ServiceName:  cfg.App.Name,
		Environment:  cfg.App.Env,
		EnableCaller: cfg.Logging.Caller,
	})

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("schedules", cfg.Data.SchedulesPath).
		Str("distance_source", cfg.Distance.Source).
		Bool("auth", cfg.AuthEnabled()).
		Msg("Configuration loaded")

	e, err := newServer(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build server")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, cfg.Server.ShutdownTimeout)
}

// newServer wires the data provider, distance source, use case and HTTP layer.
func newServer(cfg *config.Config) (*echo.Echo, error) {
	loc, err := timeutil.GetLocation(cfg.Data.Timezone)
	if err != nil {
		return nil, fmt.Errorf("data timezone: %w", err)
	}
	provider := jsonfile.NewAdapter(cfg.Data.SchedulesPath, jsonfile.WithLocation(loc))

	source, err := newDistanceSource(cfg.Distance)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics()
	if err := m.Register(registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	flightUseCase := usecase.NewFlightSearchUseCase(provider, source, &usecase.Config{
		RequestTimeout:     cfg.Timeouts.Request,
		FetchTimeout:       cfg.Timeouts.DataFetch,
		FetchAttempts:      cfg.Data.FetchRetries,
		RetryDelay:         cfg.Data.RetryDelay,
		SymmetricDistances: cfg.Distance.Symmetric,
		Observer:           m,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	mwConfig := middleware.Config{
		Logger:   middleware.LoggerConfig{QuietPaths: []string{"/health", "/metrics"}},
		Recovery: middleware.DefaultRecoveryConfig(),
		Recorder: m,
	}
	if cfg.AuthEnabled() {
		mwConfig.Validator = auth.NewService(cfg.Auth.JWTSecret, auth.WithIssuer(cfg.Auth.Issuer))
	}
	middleware.SetupWithConfig(e, logger.Global.Logger, mwConfig)

	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(flightUseCase))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// newDistanceSource builds the configured distance source.
func newDistanceSource(cfg config.DistanceConfig) (domain.DistanceSource, error) {
	switch cfg.Source {
	case config.DistanceSourceTable:
		table, err := distance.LoadTable(cfg.TablePath, distance.WithFallback(cfg.Fallback))
		if err != nil {
			return nil, fmt.Errorf("distance table: %w", err)
		}
		return table, nil
	default:
		random, err := distance.NewRandomSource(cfg.Min, cfg.Max)
		if err != nil {
			return nil, fmt.Errorf("random distance source: %w", err)
		}
		return random, nil
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, timeout time.Duration) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
