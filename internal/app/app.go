package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	httpapi "github.com/shestoi/qare/internal/api/http"
	"github.com/shestoi/qare/internal/config"
	"github.com/shestoi/qare/internal/repository"
	"github.com/shestoi/qare/internal/repository/memory"
	"github.com/shestoi/qare/internal/repository/postgres"
	"github.com/shestoi/qare/internal/service"
	platformhealth "github.com/shestoi/qare/platform/health/http"
	platformlogging "github.com/shestoi/qare/platform/logging"
	platformobservability "github.com/shestoi/qare/platform/observability"
	platformshutdown "github.com/shestoi/qare/platform/shutdown"
)

const serviceName = "supply"

// App содержит все зависимости для запуска и корректного shutdown Supply Service
type App struct {
	logger      *zap.Logger
	httpServer  *http.Server
	shutdownMgr *platformshutdown.Manager
	wg          sync.WaitGroup
}

// Build создаёт и настраивает все зависимости Supply Service
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: serviceName,
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}

	cfg.Log(logger)
	logger = logger.With(zap.String("op", op))
	logger.Info("Building Supply service", zap.String("http_addr", cfg.HTTPAddr))

	otelShutdown, err := platformobservability.Init(context.Background(), platformobservability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           serviceName,
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	// выполняется последним: спаны от shutdown сервера ещё успевают уйти
	shutdownMgr.Add("otel", otelShutdown)

	supplyRepo, readiness, err := buildStorage(cfg, logger, shutdownMgr)
	if err != nil {
		_ = otelShutdown(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	supplyService := service.NewSupplyService(logger, supplyRepo)
	handler := httpapi.NewHandler(supplyService, logger)

	opts := httpapi.RouterOptions{AllowedOrigins: cfg.CORSAllowedOrigins}
	if cfg.MetricsEnabled {
		opts.Metrics = platformobservability.NewHTTPMetrics(serviceName)
	}
	router := httpapi.NewRouter(handler, readiness, logger, opts)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	return &App{
		logger:      logger,
		httpServer:  httpServer,
		shutdownMgr: shutdownMgr,
	}, nil
}

// buildStorage выбирает хранилище по SUPPLY_STORAGE
// Для postgres накатывает миграции и регистрирует закрытие пула
func buildStorage(cfg config.Config, logger *zap.Logger, shutdownMgr *platformshutdown.Manager) (repository.SupplyRepository, platformhealth.Readiness, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("Using in-memory storage, data is lost on restart")
		return memory.NewMemoryRepository(), nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Applying migrations")
	if err := postgres.Migrate(ctx, cfg.PostgresDSN); err != nil {
		return nil, nil, err
	}

	logger.Info("Connecting to PostgreSQL")
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	logger.Info("PostgreSQL connection established")

	shutdownMgr.Add("postgres_pool", platformshutdown.ClosePool(pool))

	return postgres.NewRepository(pool), pool.Ping, nil
}

// Handler возвращает корневой HTTP handler (нужен тестам без поднятия сервера)
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run запускает сервис и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting Supply service", zap.String("addr", a.httpServer.Addr))
	a.logger.Info("Health check available", zap.String("url", "http://"+a.httpServer.Addr+"/health"))

	// ошибка ListenAndServe (например, занят порт) прерывает ожидание сигнала
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var serveErr error
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
			serveErr = err
			cancel()
		}
	}()

	a.shutdownMgr.Wait(ctx)

	a.wg.Wait()
	if serveErr != nil {
		return fmt.Errorf("http server: %w", serveErr)
	}
	a.logger.Info("Supply service stopped")
	return nil
}
