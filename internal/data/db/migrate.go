package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/staffing-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	// The staffing join table carries a composite primary key, so it has to be
	// registered before the many2many relation is migrated.
	if err := db.SetupJoinTable(&types.Project{}, "Employees", &types.ProjectEmployee{}); err != nil {
		return fmt.Errorf("setup project_employee join table: %w", err)
	}
	return db.AutoMigrate(
		&types.Employee{},
		&types.Project{},
		&types.ProjectEmployee{},
	)
}

func EnsureProjectIndexes(db *gorm.DB) error {
	// Filtered listing hits (priority, start_date) together often enough to
	// deserve a composite index.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_project_priority_start_date
		ON project (priority, start_date);
	`).Error; err != nil {
		return fmt.Errorf("create idx_project_priority_start_date: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_employee_name
		ON employee (last_name, first_name, middle_name);
	`).Error; err != nil {
		return fmt.Errorf("create idx_employee_name: %w", err)
	}
	return nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureProjectIndexes(s.db); err != nil {
		s.log.Error("Project index migration failed", "error", err)
		return err
	}
	return nil
}
