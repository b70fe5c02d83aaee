package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/staffing-backend/internal/http/handlers"
	httpMW "github.com/yungbote/staffing-backend/internal/http/middleware"
	"github.com/yungbote/staffing-backend/internal/observability"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	TracingEnabled bool
	AllowedOrigins []string
	Metrics        *observability.Metrics

	HealthHandler   *httpH.HealthHandler
	ProjectHandler  *httpH.ProjectHandler
	EmployeeHandler *httpH.EmployeeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Projects
		if cfg.ProjectHandler != nil {
			api.GET("/projects", cfg.ProjectHandler.ListProjects)
			api.POST("/projects", cfg.ProjectHandler.CreateProject)
			api.GET("/projects/search", cfg.ProjectHandler.SearchProjects)
			api.GET("/projects/:id", cfg.ProjectHandler.GetProject)
			api.PUT("/projects/:id", cfg.ProjectHandler.UpdateProject)
			api.DELETE("/projects/:id", cfg.ProjectHandler.DeleteProject)
			api.POST("/projects/:id/employees/:employeeId", cfg.ProjectHandler.AddEmployee)
			api.DELETE("/projects/:id/employees/:employeeId", cfg.ProjectHandler.RemoveEmployee)
		}

		// Employees
		if cfg.EmployeeHandler != nil {
			api.GET("/employees", cfg.EmployeeHandler.ListEmployees)
			api.GET("/employees/:id", cfg.EmployeeHandler.GetEmployee)
		}
	}

	return r
}
