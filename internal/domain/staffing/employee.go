package staffing

import (
	"strings"
	"time"
)

// Employee is a person who may staff or manage projects. It carries no
// references back to projects; those are always resolved through the store.
type Employee struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName   string `gorm:"column:last_name;index" json:"last_name"`
	FirstName  string `gorm:"column:first_name" json:"first_name"`
	MiddleName string `gorm:"column:middle_name" json:"middle_name"`
	Email      string `gorm:"column:email" json:"email"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string { return "employee" }

// FullName renders "Last First Middle", skipping blank parts.
func (e *Employee) FullName() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{e.LastName, e.FirstName, e.MiddleName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
