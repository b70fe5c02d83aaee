package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/staffing-backend/internal/domain"
)

func SeedEmployee(tb testing.TB, ctx context.Context, tx *gorm.DB, first, last string) *types.Employee {
	tb.Helper()
	e := &types.Employee{
		FirstName: first,
		LastName:  last,
		Email:     first + "." + last + "@example.com",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed employee: %v", err)
	}
	return e
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, priority int, start time.Time, managerID *int64) *types.Project {
	tb.Helper()
	p := &types.Project{
		Name:             name,
		CustomerCompany:  "Acme",
		ExecutorCompany:  "Initech",
		StartDate:        start.UTC(),
		EndDate:          start.UTC().AddDate(0, 3, 0),
		Priority:         priority,
		ProjectManagerID: managerID,
	}
	if err := tx.WithContext(ctx).Omit("ProjectManager", "Employees").Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
