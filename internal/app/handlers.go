package app

import (
	httpH "github.com/yungbote/staffing-backend/internal/http/handlers"
	"github.com/yungbote/staffing-backend/internal/observability"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
	"github.com/yungbote/staffing-backend/internal/realtime/bus"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Project  *httpH.ProjectHandler
	Employee *httpH.EmployeeHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, db httpH.Pinger, events bus.Bus, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Project:  httpH.NewProjectHandler(log, serviceset.Project, events, metrics),
		Employee: httpH.NewEmployeeHandler(serviceset.Employee),
	}
}
