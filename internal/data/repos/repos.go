package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/staffing-backend/internal/data/repos/staffing"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type ProjectRepo = staffing.ProjectRepo
type EmployeeRepo = staffing.EmployeeRepo

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return staffing.NewProjectRepo(db, baseLog)
}
func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return staffing.NewEmployeeRepo(db, baseLog)
}
