package staffing

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/staffing-backend/internal/data/dberr"
	types "github.com/yungbote/staffing-backend/internal/domain"
	"github.com/yungbote/staffing-backend/internal/platform/dbctx"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type ProjectRepo interface {
	// GetByID returns (nil, nil) when the project does not exist.
	GetByID(dbc dbctx.Context, id int64) (*types.Project, error)
	GetAll(dbc dbctx.Context) ([]*types.Project, error)
	Create(dbc dbctx.Context, project *types.Project) error
	Update(dbc dbctx.Context, project *types.Project) error
	Delete(dbc dbctx.Context, id int64) error
	GetFiltered(dbc dbctx.Context, filter types.ProjectFilter, sort types.ProjectSort) ([]*types.Project, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{
		db:  db,
		log: baseLog.With("repo", "ProjectRepo"),
	}
}

func (r *projectRepo) GetByID(dbc dbctx.Context, id int64) (*types.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.Project
	if err := withRelations(transaction.WithContext(dbc.Ctx)).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, dberr.MapError("ProjectRepo.GetByID", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *projectRepo) GetAll(dbc dbctx.Context) ([]*types.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.Project{}
	if err := withRelations(transaction.WithContext(dbc.Ctx)).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.MapError("ProjectRepo.GetAll", err)
	}
	return out, nil
}

// Create inserts the project row and its staffing rows in one transaction.
// Manager and staff employees are referenced by id, never upserted.
func (r *projectRepo) Create(dbc dbctx.Context, project *types.Project) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	err := transaction.WithContext(dbc.Ctx).Transaction(func(txx *gorm.DB) error {
		if err := txx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		return insertStaff(txx, project)
	})
	return dberr.MapError("ProjectRepo.Create", err)
}

// Update overwrites every scalar column plus the manager reference and replaces
// the staffing rows wholesale.
func (r *projectRepo) Update(dbc dbctx.Context, project *types.Project) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	project.UpdatedAt = time.Now().UTC()
	err := transaction.WithContext(dbc.Ctx).Transaction(func(txx *gorm.DB) error {
		res := txx.Model(&types.Project{}).
			Where("id = ?", project.ID).
			Updates(map[string]interface{}{
				"name":               project.Name,
				"customer_company":   project.CustomerCompany,
				"executor_company":   project.ExecutorCompany,
				"start_date":         project.StartDate,
				"end_date":           project.EndDate,
				"priority":           project.Priority,
				"project_manager_id": project.ProjectManagerID,
				"updated_at":         project.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := txx.Where("project_id = ?", project.ID).Delete(&types.ProjectEmployee{}).Error; err != nil {
			return err
		}
		return insertStaff(txx, project)
	})
	return dberr.MapError("ProjectRepo.Update", err)
}

// Delete is a hard delete; deleting a missing id is a no-op.
func (r *projectRepo) Delete(dbc dbctx.Context, id int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	err := transaction.WithContext(dbc.Ctx).Transaction(func(txx *gorm.DB) error {
		if err := txx.Where("project_id = ?", id).Delete(&types.ProjectEmployee{}).Error; err != nil {
			return err
		}
		return txx.Where("id = ?", id).Delete(&types.Project{}).Error
	})
	return dberr.MapError("ProjectRepo.Delete", err)
}

func (r *projectRepo) GetFiltered(dbc dbctx.Context, filter types.ProjectFilter, sort types.ProjectSort) ([]*types.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	q := withRelations(transaction.WithContext(dbc.Ctx)).Model(&types.Project{})

	if filter.Name != nil && *filter.Name != "" {
		q = q.Where(containsExpr(transaction, "name"), *filter.Name)
	}
	if filter.StartDateFrom != nil {
		q = q.Where("start_date >= ?", filter.StartDateFrom.UTC())
	}
	if filter.StartDateTo != nil {
		q = q.Where("start_date <= ?", filter.StartDateTo.UTC())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: sortColumn(sort.Field)},
		Desc:   sort.Descending,
	}).Order("id ASC")

	out := []*types.Project{}
	if err := q.Find(&out).Error; err != nil {
		return nil, dberr.MapError("ProjectRepo.GetFiltered", err)
	}
	return out, nil
}

func withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("ProjectManager").
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

func insertStaff(txx *gorm.DB, project *types.Project) error {
	ids := project.StaffIDs()
	if len(ids) == 0 {
		return nil
	}
	rows := make([]*types.ProjectEmployee, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, &types.ProjectEmployee{ProjectID: project.ID, EmployeeID: id})
	}
	return txx.Create(&rows).Error
}

func sortColumn(field types.ProjectSortField) string {
	switch field {
	case types.SortByStartDate:
		return "start_date"
	case types.SortByPriority:
		return "priority"
	default:
		return "name"
	}
}

// containsExpr builds a case-sensitive substring predicate. LIKE is avoided
// because SQLite's LIKE ignores ASCII case while Postgres' does not.
func containsExpr(db *gorm.DB, column string) string {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return "instr(" + column + ", ?) > 0"
	}
	return "strpos(" + column + ", ?) > 0"
}
