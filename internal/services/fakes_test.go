package services

import (
	"sort"
	"strings"
	"testing"
	"time"

	types "github.com/yungbote/staffing-backend/internal/domain"
	"github.com/yungbote/staffing-backend/internal/platform/dbctx"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type fakeEmployeeRepo struct {
	employees []*types.Employee

	getAllCalls int
	err         error
}

func (f *fakeEmployeeRepo) GetByID(dbc dbctx.Context, id int64) (*types.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.employees {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetAll(dbc dbctx.Context) ([]*types.Employee, error) {
	f.getAllCalls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*types.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) SearchByName(dbc dbctx.Context, name string) ([]*types.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	out := []*types.Employee{}
	for _, e := range f.employees {
		if needle == "" || strings.Contains(strings.ToLower(e.FullName()), needle) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error) {
	for _, e := range employees {
		e.ID = int64(len(f.employees) + 1)
		cp := *e
		f.employees = append(f.employees, &cp)
	}
	return employees, nil
}

type fakeProjectRepo struct {
	projects map[int64]*types.Project
	nextID   int64

	createCalls int
	updateCalls int
	deleteCalls int
	lastFilter  types.ProjectFilter
	lastSort    types.ProjectSort

	err error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[int64]*types.Project{}, nextID: 1}
}

func cloneProject(p *types.Project) *types.Project {
	cp := *p
	cp.Employees = append([]*types.Employee(nil), p.Employees...)
	if p.ProjectManagerID != nil {
		id := *p.ProjectManagerID
		cp.ProjectManagerID = &id
	}
	return &cp
}

func (f *fakeProjectRepo) GetByID(dbc dbctx.Context, id int64) (*types.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	return cloneProject(p), nil
}

func (f *fakeProjectRepo) GetAll(dbc dbctx.Context) ([]*types.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(func(*types.Project) bool { return true }, types.ProjectSort{}), nil
}

func (f *fakeProjectRepo) Create(dbc dbctx.Context, project *types.Project) error {
	f.createCalls++
	if f.err != nil {
		return f.err
	}
	project.ID = f.nextID
	f.nextID++
	f.projects[project.ID] = cloneProject(project)
	return nil
}

func (f *fakeProjectRepo) Update(dbc dbctx.Context, project *types.Project) error {
	f.updateCalls++
	if f.err != nil {
		return f.err
	}
	f.projects[project.ID] = cloneProject(project)
	return nil
}

func (f *fakeProjectRepo) Delete(dbc dbctx.Context, id int64) error {
	f.deleteCalls++
	if f.err != nil {
		return f.err
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) GetFiltered(dbc dbctx.Context, filter types.ProjectFilter, s types.ProjectSort) ([]*types.Project, error) {
	f.lastFilter, f.lastSort = filter, s
	if f.err != nil {
		return nil, f.err
	}
	match := func(p *types.Project) bool {
		if filter.Name != nil && *filter.Name != "" && !strings.Contains(p.Name, *filter.Name) {
			return false
		}
		if filter.StartDateFrom != nil && p.StartDate.Before(*filter.StartDateFrom) {
			return false
		}
		if filter.StartDateTo != nil && p.StartDate.After(*filter.StartDateTo) {
			return false
		}
		if filter.Priority != nil && p.Priority != *filter.Priority {
			return false
		}
		return true
	}
	return f.sorted(match, s), nil
}

func (f *fakeProjectRepo) sorted(keep func(*types.Project) bool, s types.ProjectSort) []*types.Project {
	out := []*types.Project{}
	for _, p := range f.projects {
		if keep(p) {
			out = append(out, cloneProject(p))
		}
	}
	less := func(a, b *types.Project) int {
		switch s.Field {
		case types.SortByStartDate:
			return a.StartDate.Compare(b.StartDate)
		case types.SortByPriority:
			return a.Priority - b.Priority
		default:
			return strings.Compare(a.Name, b.Name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := less(out[i], out[j])
		if s.Descending {
			c = -c
		}
		if c == 0 {
			return out[i].ID < out[j].ID
		}
		return c < 0
	})
	return out
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func seedEmployees(n int) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{}
	for i := 1; i <= n; i++ {
		repo.employees = append(repo.employees, &types.Employee{
			ID:        int64(i),
			FirstName: "First" + string(rune('A'+i-1)),
			LastName:  "Last" + string(rune('A'+i-1)),
		})
	}
	return repo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
