package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	types "github.com/yungbote/staffing-backend/internal/domain"
	domainagg "github.com/yungbote/staffing-backend/internal/domain/aggregates"
	"github.com/yungbote/staffing-backend/internal/platform/pointers"
)

func newProjectFixture(t *testing.T, employees int) (ProjectService, *fakeProjectRepo, *fakeEmployeeRepo) {
	t.Helper()
	projects := newFakeProjectRepo()
	staff := seedEmployees(employees)
	return NewProjectService(testLogger(t), projects, staff), projects, staff
}

func TestCreateProjectUnknownManager(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 2)

	_, err := svc.CreateProject(context.Background(), ProjectInput{
		Name:      "Alpha",
		StartDate: day(2024, 1, 1),
		EndDate:   day(2024, 2, 1),
		ManagerID: pointers.Int64(99),
	})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("CreateProject: want not_found got %v", err)
	}
	if projects.createCalls != 0 {
		t.Fatalf("create calls: want=0 got=%d", projects.createCalls)
	}
}

func TestCreateProjectDropsUnknownStaff(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 3)

	p, err := svc.CreateProject(context.Background(), ProjectInput{
		Name:      "Alpha",
		Priority:  2,
		StartDate: day(2024, 1, 1),
		EndDate:   day(2024, 2, 1),
		ManagerID: pointers.Int64(1),
		StaffIDs:  []int64{2, 3, 42, 3},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("CreateProject: expected generated id")
	}
	if got := p.StaffIDs(); !reflect.DeepEqual(got, []int64{2, 3}) {
		t.Fatalf("staff: want=[2 3] got=%v", got)
	}
	if p.ProjectManagerID == nil || *p.ProjectManagerID != 1 || p.ProjectManager == nil {
		t.Fatalf("manager: want=1 got=%v", p.ProjectManagerID)
	}
	if projects.createCalls != 1 {
		t.Fatalf("create calls: want=1 got=%d", projects.createCalls)
	}
}

func TestCreateProjectWithoutStaffSkipsEmployeeLookup(t *testing.T) {
	svc, _, staff := newProjectFixture(t, 2)

	p, err := svc.CreateProject(context.Background(), ProjectInput{Name: "Solo"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if len(p.Employees) != 0 || p.ProjectManagerID != nil {
		t.Fatalf("expected empty project, got staff=%v manager=%v", p.StaffIDs(), p.ProjectManagerID)
	}
	if staff.getAllCalls != 0 {
		t.Fatalf("GetAll calls: want=0 got=%d", staff.getAllCalls)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newProjectFixture(t, 0)
	if _, err := svc.GetByID(context.Background(), 7); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("GetByID: want not_found got %v", err)
	}
}

func TestStoreErrorsPassThrough(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 1)
	storeErr := domainagg.NewError(domainagg.CodeUnavailable, "ProjectRepo.GetByID", "database is locked", nil)
	projects.err = storeErr

	_, err := svc.GetByID(context.Background(), 1)
	if !errors.Is(err, storeErr) {
		t.Fatalf("GetByID: want store error got %v", err)
	}
	if domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("store outage must not surface as not_found")
	}
	if err := svc.DeleteProject(context.Background(), 1); !errors.Is(err, storeErr) {
		t.Fatalf("DeleteProject: want store error got %v", err)
	}
	if _, err := svc.GetAllProjects(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("GetAllProjects: want store error got %v", err)
	}
}

func TestUpdateProjectUnknownStaff(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 3)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, ProjectInput{Name: "Alpha", Priority: 1, StaffIDs: []int64{1}})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	staffIDs := []int64{2, 99}
	_, err = svc.UpdateProject(ctx, created.ID, ProjectUpdate{Name: "Renamed", Priority: 5, StaffIDs: &staffIDs})
	if !domainagg.IsCode(err, domainagg.CodeInvalidArgument) {
		t.Fatalf("UpdateProject: want invalid_argument got %v", err)
	}
	if projects.updateCalls != 0 {
		t.Fatalf("update calls: want=0 got=%d", projects.updateCalls)
	}
	stored, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Name != "Alpha" || stored.Priority != 1 || !reflect.DeepEqual(stored.StaffIDs(), []int64{1}) {
		t.Fatalf("project modified: name=%q priority=%d staff=%v", stored.Name, stored.Priority, stored.StaffIDs())
	}
}

func TestUpdateProjectReplacesEverything(t *testing.T) {
	svc, _, _ := newProjectFixture(t, 3)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, ProjectInput{
		Name:      "Alpha",
		ManagerID: pointers.Int64(1),
		StaffIDs:  []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	staffIDs := []int64{3, 3}
	updated, err := svc.UpdateProject(ctx, created.ID, ProjectUpdate{
		Name:            "Beta",
		CustomerCompany: "Acme",
		ExecutorCompany: "Initech",
		StartDate:       day(2024, 3, 1),
		EndDate:         day(2024, 4, 1),
		Priority:        4,
		ManagerID:       pointers.Int64(2),
		StaffIDs:        &staffIDs,
	})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.Name != "Beta" || updated.CustomerCompany != "Acme" || updated.Priority != 4 {
		t.Fatalf("scalars not overwritten: %+v", updated)
	}
	if !updated.StartDate.Equal(day(2024, 3, 1)) {
		t.Fatalf("start date: want=2024-03-01 got=%v", updated.StartDate)
	}
	if updated.ProjectManagerID == nil || *updated.ProjectManagerID != 2 {
		t.Fatalf("manager: want=2 got=%v", updated.ProjectManagerID)
	}
	if got := updated.StaffIDs(); !reflect.DeepEqual(got, []int64{3}) {
		t.Fatalf("staff: want=[3] got=%v", got)
	}
}

func TestUpdateProjectNilClearsManagerAndStaff(t *testing.T) {
	svc, _, _ := newProjectFixture(t, 2)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, ProjectInput{Name: "Alpha", ManagerID: pointers.Int64(1), StaffIDs: []int64{1, 2}})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	updated, err := svc.UpdateProject(ctx, created.ID, ProjectUpdate{Name: "Alpha"})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.ProjectManagerID != nil || updated.ProjectManager != nil {
		t.Fatalf("manager should be cleared, got %v", updated.ProjectManagerID)
	}
	if len(updated.Employees) != 0 {
		t.Fatalf("staff should be cleared, got %v", updated.StaffIDs())
	}

	empty := []int64{}
	if _, err := svc.UpdateProject(ctx, created.ID, ProjectUpdate{Name: "Alpha", StaffIDs: &empty}); err != nil {
		t.Fatalf("UpdateProject with empty staff: %v", err)
	}
}

func TestUpdateProjectMissing(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 1)
	_, err := svc.UpdateProject(context.Background(), 5, ProjectUpdate{Name: "x"})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("UpdateProject: want not_found got %v", err)
	}
	if projects.updateCalls != 0 {
		t.Fatalf("update calls: want=0 got=%d", projects.updateCalls)
	}
}

func TestUpdateProjectUnknownManager(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 1)
	ctx := context.Background()
	created, err := svc.CreateProject(ctx, ProjectInput{Name: "Alpha"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	_, err = svc.UpdateProject(ctx, created.ID, ProjectUpdate{Name: "Alpha", ManagerID: pointers.Int64(10)})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("UpdateProject: want not_found got %v", err)
	}
	if projects.updateCalls != 0 {
		t.Fatalf("update calls: want=0 got=%d", projects.updateCalls)
	}
}

func TestDeleteProject(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 0)
	ctx := context.Background()

	if err := svc.DeleteProject(ctx, 404); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("DeleteProject unknown: want not_found got %v", err)
	}
	if projects.deleteCalls != 0 {
		t.Fatalf("delete calls: want=0 got=%d", projects.deleteCalls)
	}

	created, err := svc.CreateProject(ctx, ProjectInput{Name: "Alpha"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if err := svc.DeleteProject(ctx, created.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("GetByID after delete: want not_found got %v", err)
	}
}

func TestAddAndRemoveEmployee(t *testing.T) {
	svc, _, _ := newProjectFixture(t, 2)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, ProjectInput{Name: "Alpha"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if err := svc.AddEmployeeToProject(ctx, created.ID, 2); err != nil {
		t.Fatalf("AddEmployeeToProject: %v", err)
	}
	if err := svc.AddEmployeeToProject(ctx, created.ID, 2); !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("second add: want conflict got %v", err)
	}
	p, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got := p.StaffIDs(); !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("staff after add: want=[2] got=%v", got)
	}

	if err := svc.RemoveEmployeeFromProject(ctx, created.ID, 2); err != nil {
		t.Fatalf("RemoveEmployeeFromProject: %v", err)
	}
	if err := svc.RemoveEmployeeFromProject(ctx, created.ID, 2); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("second remove: want not_found got %v", err)
	}
	p, err = svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(p.Employees) != 0 {
		t.Fatalf("staff after remove: want empty got %v", p.StaffIDs())
	}
}

func TestAddEmployeeMissingEntities(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 1)
	ctx := context.Background()
	created, err := svc.CreateProject(ctx, ProjectInput{Name: "Alpha"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	cases := []struct {
		name       string
		projectID  int64
		employeeID int64
	}{
		{"missing project", created.ID + 100, 1},
		{"missing employee", created.ID, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.AddEmployeeToProject(ctx, tc.projectID, tc.employeeID)
			if !domainagg.IsCode(err, domainagg.CodeNotFound) {
				t.Fatalf("AddEmployeeToProject: want not_found got %v", err)
			}
		})
	}
	if err := svc.RemoveEmployeeFromProject(ctx, created.ID+100, 1); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("RemoveEmployeeFromProject missing project: want not_found got %v", err)
	}
	if projects.updateCalls != 0 {
		t.Fatalf("update calls: want=0 got=%d", projects.updateCalls)
	}
}

func TestGetFilteredProjects(t *testing.T) {
	svc, _, _ := newProjectFixture(t, 0)
	ctx := context.Background()

	for _, in := range []ProjectInput{
		{Name: "Alpha", Priority: 1, StartDate: day(2024, 1, 1)},
		{Name: "Alpha Two", Priority: 3, StartDate: day(2024, 2, 1)},
		{Name: "ALPHA", Priority: 2, StartDate: day(2024, 3, 1)},
		{Name: "Zeta", Priority: 5, StartDate: day(2023, 12, 1)},
	} {
		if _, err := svc.CreateProject(ctx, in); err != nil {
			t.Fatalf("CreateProject(%s): %v", in.Name, err)
		}
	}

	jan1 := day(2024, 1, 1)
	cases := []struct {
		name string
		q    ProjectQuery
		want []string
	}{
		{
			name: "name filter priority desc",
			q:    ProjectQuery{Name: pointers.String("Alpha"), SortField: types.SortByPriority, SortDescending: true},
			want: []string{"Alpha Two", "Alpha"},
		},
		{
			name: "case sensitive substring",
			q:    ProjectQuery{Name: pointers.String("a")},
			want: []string{"Alpha", "Alpha Two", "Zeta"},
		},
		{
			name: "single day range",
			q:    ProjectQuery{StartDateFrom: &jan1, StartDateTo: &jan1},
			want: []string{"Alpha"},
		},
		{
			name: "legacy sort spelling",
			q:    ProjectQuery{SortField: "StartDate"},
			want: []string{"Zeta", "Alpha", "Alpha Two", "ALPHA"},
		},
		{
			name: "unknown sort falls back to name",
			q:    ProjectQuery{SortField: "bogus"},
			want: []string{"ALPHA", "Alpha", "Alpha Two", "Zeta"},
		},
		{
			name: "priority equality",
			q:    ProjectQuery{Priority: pointers.Int(5)},
			want: []string{"Zeta"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.GetFilteredProjects(ctx, tc.q)
			if err != nil {
				t.Fatalf("GetFilteredProjects: %v", err)
			}
			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			if !reflect.DeepEqual(names, tc.want) {
				t.Fatalf("names: want=%v got=%v", tc.want, names)
			}
		})
	}
}

func TestGetFilteredProjectsNormalizesSort(t *testing.T) {
	svc, projects, _ := newProjectFixture(t, 0)
	if _, err := svc.GetFilteredProjects(context.Background(), ProjectQuery{SortField: "PRIORITY", SortDescending: true}); err != nil {
		t.Fatalf("GetFilteredProjects: %v", err)
	}
	if projects.lastSort.Field != types.SortByPriority || !projects.lastSort.Descending {
		t.Fatalf("sort: want=priority desc got=%+v", projects.lastSort)
	}
}
