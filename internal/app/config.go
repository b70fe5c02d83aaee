package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/staffing-backend/internal/data/db"
	"github.com/yungbote/staffing-backend/internal/observability"
	"github.com/yungbote/staffing-backend/internal/platform/envutil"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
	"github.com/yungbote/staffing-backend/internal/realtime/bus"
)

type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	DB   db.Config
	Bus  bus.Config
	Otel observability.OtelConfig

	MetricsEnabled        bool
	MetricsScrapeInterval time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:            envutil.String("PORT", "8080", log),
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second, log),
		AllowedOrigins:  envutil.List("CORS_ALLOWED_ORIGINS", nil, log),
		DB: db.Config{
			Driver:           strings.ToLower(envutil.String("DB_DRIVER", db.DriverPostgres, log)),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", "staffing", log),
			SQLitePath:       envutil.String("SQLITE_PATH", "staffing.db", log),
		},
		Bus: bus.Config{
			Addr:    envutil.String("REDIS_ADDR", "", log),
			Channel: envutil.String("REDIS_CHANNEL", bus.DefaultChannel, log),
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "staffing", log),
			Environment: envutil.String("APP_ENV", "development", log),
			Version:     envutil.String("APP_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1, log),
		},
		MetricsEnabled:        envutil.Bool("METRICS_ENABLED", false, log),
		MetricsScrapeInterval: envutil.Seconds("METRICS_SCRAPE_INTERVAL_SECONDS", 10*time.Second, log),
	}
}

func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	return fmt.Sprintf(":%s", port)
}
