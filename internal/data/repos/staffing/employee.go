package staffing

import (
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/staffing-backend/internal/data/dberr"
	types "github.com/yungbote/staffing-backend/internal/domain"
	"github.com/yungbote/staffing-backend/internal/platform/dbctx"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type EmployeeRepo interface {
	// GetByID returns (nil, nil) when the employee does not exist.
	GetByID(dbc dbctx.Context, id int64) (*types.Employee, error)
	GetAll(dbc dbctx.Context) ([]*types.Employee, error)
	// SearchByName matches name case-insensitively against last, first and
	// middle name.
	SearchByName(dbc dbctx.Context, name string) ([]*types.Employee, error)
	Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return &employeeRepo{
		db:  db,
		log: baseLog.With("repo", "EmployeeRepo"),
	}
}

func (r *employeeRepo) GetByID(dbc dbctx.Context, id int64) (*types.Employee, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var rows []*types.Employee
	if err := transaction.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, dberr.MapError("EmployeeRepo.GetByID", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *employeeRepo) GetAll(dbc dbctx.Context) ([]*types.Employee, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	out := []*types.Employee{}
	if err := transaction.WithContext(dbc.Ctx).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.MapError("EmployeeRepo.GetAll", err)
	}
	return out, nil
}

func (r *employeeRepo) SearchByName(dbc dbctx.Context, name string) ([]*types.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.GetAll(dbc)
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	pattern := "%" + escapeLike(strings.ToLower(name)) + "%"
	out := []*types.Employee{}
	if err := transaction.WithContext(dbc.Ctx).
		Where(`LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(middle_name) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order("last_name ASC, first_name ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, dberr.MapError("EmployeeRepo.SearchByName", err)
	}
	return out, nil
}

func (r *employeeRepo) Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(employees) == 0 {
		return []*types.Employee{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&employees).Error; err != nil {
		return nil, dberr.MapError("EmployeeRepo.Create", err)
	}
	return employees, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
