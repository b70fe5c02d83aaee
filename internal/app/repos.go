package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/staffing-backend/internal/data/repos"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type Repos struct {
	Project  repos.ProjectRepo
	Employee repos.EmployeeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Project:  repos.NewProjectRepo(db, log),
		Employee: repos.NewEmployeeRepo(db, log),
	}
}
