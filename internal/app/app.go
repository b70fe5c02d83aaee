package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/staffing-backend/internal/data/db"
	server "github.com/yungbote/staffing-backend/internal/http"
	"github.com/yungbote/staffing-backend/internal/observability"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
	"github.com/yungbote/staffing-backend/internal/realtime/bus"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	database     *db.DatabaseService
	events       bus.Bus
	server       *server.Server
	otelShutdown func(context.Context) error
}

// New builds the full object graph without serving. Callers must Close the
// returned app.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	gin.SetMode(ginMode(logMode))

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	a := &App{Log: log, Cfg: cfg}
	a.otelShutdown = observability.InitOTel(ctx, log, cfg.Otel)

	a.database, err = db.NewDatabaseService(cfg.DB, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := a.database.AutoMigrateAll(); err != nil {
		a.Close()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	a.DB = a.database.DB()

	a.events, err = bus.New(log, cfg.Bus)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init event bus: %w", err)
	}

	if cfg.MetricsEnabled {
		a.Metrics = observability.NewMetrics()
	}

	a.Repos = wireRepos(a.DB, log)
	a.Services = wireServices(log, a.Repos)
	handlerset := wireHandlers(log, a.Services, a.database, a.events, a.Metrics)
	a.server = server.NewServer(cfg.Addr(), wireRouterConfig(log, cfg, handlerset, a.Metrics))

	return a, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts the
// server down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}

	g, gctx := errgroup.WithContext(ctx)
	a.Metrics.StartDBCollector(gctx, a.Log, a.DB, a.Cfg.MetricsScrapeInterval)

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.Cfg.Addr())
		return a.server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down server", "timeout", a.Cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.Log.Warn("Event bus close failed", "error", err)
		}
	}
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("Tracer shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
