package seed

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/staffing-backend/internal/data/repos"
	types "github.com/yungbote/staffing-backend/internal/domain"
	"github.com/yungbote/staffing-backend/internal/platform/dbctx"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
	"github.com/yungbote/staffing-backend/internal/services"
)

type Options struct {
	DryRun bool
	// Concurrency bounds parallel project creation. Values below 1 mean
	// sequential, which keeps project ids in fixture order.
	Concurrency int
}

type Result struct {
	Employees []*types.Employee
	Projects  []*types.Project
}

type Seeder struct {
	log       *logger.Logger
	employees repos.EmployeeRepo
	projects  services.ProjectService
}

func NewSeeder(baseLog *logger.Logger, employees repos.EmployeeRepo, projects services.ProjectService) *Seeder {
	return &Seeder{
		log:       baseLog.With("component", "Seeder"),
		employees: employees,
		projects:  projects,
	}
}

// Apply inserts the fixture's employees, then creates each project through
// the project service so manager and staff rules apply.
//
// The load is not atomic. Employees are committed before any project, and
// each project commits on its own, so a failing project leaves the
// employees and every project created before it in place. Run validate first
// and seed an empty database.
func (s *Seeder) Apply(ctx context.Context, f *Fixture, opts Options) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	res := &Result{}
	if opts.DryRun {
		s.log.Info("Seed dry run", "employees", len(f.Employees), "projects", len(f.Projects))
		return res, nil
	}

	rows := make([]*types.Employee, 0, len(f.Employees))
	for _, e := range f.Employees {
		rows = append(rows, &types.Employee{
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			MiddleName: e.MiddleName,
			Email:      e.Email,
		})
	}
	created, err := s.employees.Create(dbctx.Context{Ctx: ctx}, rows)
	if err != nil {
		return nil, fmt.Errorf("seed employees: %w", err)
	}
	res.Employees = created

	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}
	res.Projects = make([]*types.Project, len(f.Projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range f.Projects {
		in := projectInput(p, created)
		g.Go(func() error {
			project, err := s.projects.CreateProject(gctx, in)
			if err != nil {
				return fmt.Errorf("seed project %q: %w", in.Name, err)
			}
			res.Projects[i] = project
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Info("Seed applied", "employees", len(res.Employees), "projects", len(res.Projects))
	return res, nil
}

func projectInput(p ProjectFixture, employees []*types.Employee) services.ProjectInput {
	in := services.ProjectInput{
		Name:            p.Name,
		CustomerCompany: p.CustomerCompany,
		ExecutorCompany: p.ExecutorCompany,
		StartDate:       p.StartDate.Time,
		EndDate:         p.EndDate.Time,
		Priority:        p.Priority,
	}
	if p.Manager > 0 {
		id := employees[p.Manager-1].ID
		in.ManagerID = &id
	}
	for _, idx := range p.Staff {
		in.StaffIDs = append(in.StaffIDs, employees[idx-1].ID)
	}
	return in
}
