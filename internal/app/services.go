package app

import (
	"github.com/yungbote/staffing-backend/internal/platform/logger"
	"github.com/yungbote/staffing-backend/internal/services"
)

type Services struct {
	Project  services.ProjectService
	Employee services.EmployeeService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Project:  services.NewProjectService(log, reposet.Project, reposet.Employee),
		Employee: services.NewEmployeeService(log, reposet.Employee),
	}
}
