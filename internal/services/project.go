package services

import (
	"context"
	"time"

	"github.com/yungbote/staffing-backend/internal/data/repos"
	types "github.com/yungbote/staffing-backend/internal/domain"
	domainagg "github.com/yungbote/staffing-backend/internal/domain/aggregates"
	"github.com/yungbote/staffing-backend/internal/platform/dbctx"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

// ProjectInput carries everything needed to create a project. Unknown staff
// ids are dropped on create.
type ProjectInput struct {
	Name            string
	CustomerCompany string
	ExecutorCompany string
	StartDate       time.Time
	EndDate         time.Time
	Priority        int
	ManagerID       *int64
	StaffIDs        []int64
}

// ProjectUpdate overwrites every attribute of an existing project. A nil
// ManagerID clears the manager and a nil StaffIDs clears the staff set.
type ProjectUpdate struct {
	Name            string
	CustomerCompany string
	ExecutorCompany string
	StartDate       time.Time
	EndDate         time.Time
	Priority        int
	ManagerID       *int64
	StaffIDs        *[]int64
}

// ProjectQuery describes a filtered, sorted listing. Nil filters are ignored.
type ProjectQuery struct {
	Name           *string
	StartDateFrom  *time.Time
	StartDateTo    *time.Time
	Priority       *int
	SortField      types.ProjectSortField
	SortDescending bool
}

type ProjectService interface {
	CreateProject(ctx context.Context, in ProjectInput) (*types.Project, error)
	GetByID(ctx context.Context, id int64) (*types.Project, error)
	GetAllProjects(ctx context.Context) ([]*types.Project, error)
	// UpdateProject fails with invalid_argument when any requested staff id
	// does not exist.
	UpdateProject(ctx context.Context, id int64, in ProjectUpdate) (*types.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	GetFilteredProjects(ctx context.Context, q ProjectQuery) ([]*types.Project, error)
	AddEmployeeToProject(ctx context.Context, projectID, employeeID int64) error
	RemoveEmployeeFromProject(ctx context.Context, projectID, employeeID int64) error
}

type projectService struct {
	log          *logger.Logger
	projectRepo  repos.ProjectRepo
	employeeRepo repos.EmployeeRepo
}

func NewProjectService(
	baseLog *logger.Logger,
	projectRepo repos.ProjectRepo,
	employeeRepo repos.EmployeeRepo,
) ProjectService {
	return &projectService{
		log:          baseLog.With("service", "ProjectService"),
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *projectService) CreateProject(ctx context.Context, in ProjectInput) (*types.Project, error) {
	const op = "ProjectService.CreateProject"
	dbc := dbctx.Context{Ctx: ctx}

	project := &types.Project{}
	applyFields(project, in.Name, in.CustomerCompany, in.ExecutorCompany, in.StartDate, in.EndDate, in.Priority)

	if in.ManagerID != nil {
		manager, err := s.resolveManager(dbc, op, *in.ManagerID)
		if err != nil {
			return nil, err
		}
		project.SetManager(manager)
	}

	if len(in.StaffIDs) > 0 {
		all, err := s.employeeRepo.GetAll(dbc)
		if err != nil {
			return nil, err
		}
		project.Employees = selectEmployees(all, in.StaffIDs)
	}

	if err := s.projectRepo.Create(dbc, project); err != nil {
		return nil, err
	}
	s.log.Debug("Project created", "project_id", project.ID, "staff", len(project.Employees))
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*types.Project, error) {
	return s.loadProject(dbctx.Context{Ctx: ctx}, "ProjectService.GetByID", id)
}

func (s *projectService) GetAllProjects(ctx context.Context) ([]*types.Project, error) {
	return s.projectRepo.GetAll(dbctx.Context{Ctx: ctx})
}

func (s *projectService) UpdateProject(ctx context.Context, id int64, in ProjectUpdate) (*types.Project, error) {
	const op = "ProjectService.UpdateProject"
	dbc := dbctx.Context{Ctx: ctx}

	project, err := s.loadProject(dbc, op, id)
	if err != nil {
		return nil, err
	}
	applyFields(project, in.Name, in.CustomerCompany, in.ExecutorCompany, in.StartDate, in.EndDate, in.Priority)

	if in.ManagerID != nil {
		manager, err := s.resolveManager(dbc, op, *in.ManagerID)
		if err != nil {
			return nil, err
		}
		project.SetManager(manager)
	} else {
		project.SetManager(nil)
	}

	if in.StaffIDs != nil {
		all, err := s.employeeRepo.GetAll(dbc)
		if err != nil {
			return nil, err
		}
		selected := selectEmployees(all, *in.StaffIDs)
		if len(selected) != len(distinctIDs(*in.StaffIDs)) {
			return nil, domainagg.InvalidArgument(op, "one or more employees not found")
		}
		project.Employees = selected
	} else {
		project.Employees = []*types.Employee{}
	}

	if err := s.projectRepo.Update(dbc, project); err != nil {
		return nil, err
	}
	s.log.Debug("Project updated", "project_id", project.ID, "staff", len(project.Employees))
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	dbc := dbctx.Context{Ctx: ctx}
	if _, err := s.loadProject(dbc, "ProjectService.DeleteProject", id); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(dbc, id); err != nil {
		return err
	}
	s.log.Debug("Project deleted", "project_id", id)
	return nil
}

func (s *projectService) GetFilteredProjects(ctx context.Context, q ProjectQuery) ([]*types.Project, error) {
	field := q.SortField
	if !field.Valid() {
		field = types.ParseProjectSortField(string(field))
	}
	filter := types.ProjectFilter{
		Name:          q.Name,
		StartDateFrom: q.StartDateFrom,
		StartDateTo:   q.StartDateTo,
		Priority:      q.Priority,
	}
	return s.projectRepo.GetFiltered(dbctx.Context{Ctx: ctx}, filter, types.ProjectSort{Field: field, Descending: q.SortDescending})
}

func (s *projectService) AddEmployeeToProject(ctx context.Context, projectID, employeeID int64) error {
	const op = "ProjectService.AddEmployeeToProject"
	dbc := dbctx.Context{Ctx: ctx}

	project, err := s.projectRepo.GetByID(dbc, projectID)
	if err != nil {
		return err
	}
	employee, err := s.employeeRepo.GetByID(dbc, employeeID)
	if err != nil {
		return err
	}
	if project == nil || employee == nil {
		return domainagg.NotFound(op, "project or employee not found")
	}
	if project.HasEmployee(employeeID) {
		return domainagg.Conflict(op, "employee already on project")
	}

	project.Employees = append(project.Employees, employee)
	if err := s.projectRepo.Update(dbc, project); err != nil {
		return err
	}
	s.log.Debug("Employee added to project", "project_id", projectID, "employee_id", employeeID)
	return nil
}

func (s *projectService) RemoveEmployeeFromProject(ctx context.Context, projectID, employeeID int64) error {
	const op = "ProjectService.RemoveEmployeeFromProject"
	dbc := dbctx.Context{Ctx: ctx}

	project, err := s.projectRepo.GetByID(dbc, projectID)
	if err != nil {
		return err
	}
	// A missing project and an employee who is not on the project are the
	// same signal to callers.
	if project == nil || !project.RemoveEmployee(employeeID) {
		return domainagg.NotFound(op, "project or employee not found")
	}

	if err := s.projectRepo.Update(dbc, project); err != nil {
		return err
	}
	s.log.Debug("Employee removed from project", "project_id", projectID, "employee_id", employeeID)
	return nil
}

func (s *projectService) loadProject(dbc dbctx.Context, op string, id int64) (*types.Project, error) {
	project, err := s.projectRepo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domainagg.NotFound(op, "project not found")
	}
	return project, nil
}

func (s *projectService) resolveManager(dbc dbctx.Context, op string, id int64) (*types.Employee, error) {
	manager, err := s.employeeRepo.GetByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domainagg.NotFound(op, "project manager not found")
	}
	return manager, nil
}

func applyFields(p *types.Project, name, customer, executor string, start, end time.Time, priority int) {
	p.Name = name
	p.CustomerCompany = customer
	p.ExecutorCompany = executor
	p.StartDate = start.UTC()
	p.EndDate = end.UTC()
	p.Priority = priority
}

// selectEmployees keeps the employees whose id appears in ids, in store order.
func selectEmployees(all []*types.Employee, ids []int64) []*types.Employee {
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]*types.Employee, 0, len(wanted))
	for _, e := range all {
		if e == nil {
			continue
		}
		if _, ok := wanted[e.ID]; ok {
			out = append(out, e)
			delete(wanted, e.ID)
		}
	}
	return out
}

func distinctIDs(ids []int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
