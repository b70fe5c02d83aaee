package services

import (
	"context"

	"github.com/yungbote/staffing-backend/internal/data/repos"
	types "github.com/yungbote/staffing-backend/internal/domain"
	domainagg "github.com/yungbote/staffing-backend/internal/domain/aggregates"
	"github.com/yungbote/staffing-backend/internal/platform/dbctx"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

// EmployeeService is read-only. Employees are created by the persistence layer.
type EmployeeService interface {
	GetByID(ctx context.Context, id int64) (*types.Employee, error)
	ListEmployees(ctx context.Context) ([]*types.Employee, error)
	SearchByName(ctx context.Context, name string) ([]*types.Employee, error)
}

type employeeService struct {
	log          *logger.Logger
	employeeRepo repos.EmployeeRepo
}

func NewEmployeeService(baseLog *logger.Logger, employeeRepo repos.EmployeeRepo) EmployeeService {
	return &employeeService{
		log:          baseLog.With("service", "EmployeeService"),
		employeeRepo: employeeRepo,
	}
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*types.Employee, error) {
	employee, err := s.employeeRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domainagg.NotFound("EmployeeService.GetByID", "employee not found")
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]*types.Employee, error) {
	return s.employeeRepo.GetAll(dbctx.Context{Ctx: ctx})
}

func (s *employeeService) SearchByName(ctx context.Context, name string) ([]*types.Employee, error) {
	return s.employeeRepo.SearchByName(dbctx.Context{Ctx: ctx}, name)
}
