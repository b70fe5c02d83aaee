package app

import (
	"github.com/gin-gonic/gin"

	server "github.com/yungbote/staffing-backend/internal/http"
	"github.com/yungbote/staffing-backend/internal/observability"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

func wireRouterConfig(log *logger.Logger, cfg Config, handlerset Handlers, metrics *observability.Metrics) server.RouterConfig {
	return server.RouterConfig{
		Log:             log.With("component", "http"),
		ServiceName:     cfg.Otel.ServiceName,
		TracingEnabled:  cfg.Otel.Enabled,
		AllowedOrigins:  cfg.AllowedOrigins,
		Metrics:         metrics,
		HealthHandler:   handlerset.Health,
		ProjectHandler:  handlerset.Project,
		EmployeeHandler: handlerset.Employee,
	}
}

func ginMode(logMode string) string {
	switch logMode {
	case "production", "prod":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
