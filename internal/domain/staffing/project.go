package staffing

import "time"

// Project is a unit of work with schedule, priority, an optional manager and
// a staff set.
type Project struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	CustomerCompany string    `gorm:"column:customer_company" json:"customer_company"`
	ExecutorCompany string    `gorm:"column:executor_company" json:"executor_company"`
	StartDate       time.Time `gorm:"column:start_date;not null;index" json:"start_date"`
	EndDate         time.Time `gorm:"column:end_date;not null" json:"end_date"`
	Priority        int       `gorm:"column:priority;not null;index" json:"priority"`

	ProjectManagerID *int64    `gorm:"column:project_manager_id;index" json:"project_manager_id"`
	ProjectManager   *Employee `gorm:"foreignKey:ProjectManagerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"project_manager,omitempty"`

	// Staff set. Unique by employee id; order is irrelevant.
	Employees []*Employee `gorm:"many2many:project_employee;joinForeignKey:ProjectID;joinReferences:EmployeeID" json:"employees"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "project" }

// ProjectEmployee is the staffing join row. The composite primary key keeps an
// employee from appearing twice in one staff set.
type ProjectEmployee struct {
	ProjectID  int64 `gorm:"primaryKey;column:project_id"`
	EmployeeID int64 `gorm:"primaryKey;column:employee_id;index"`
}

func (ProjectEmployee) TableName() string { return "project_employee" }

// SetManager assigns e as manager, keeping the id and the resolved relation in
// step. A nil e clears both.
func (p *Project) SetManager(e *Employee) {
	if e == nil {
		p.ProjectManager = nil
		p.ProjectManagerID = nil
		return
	}
	id := e.ID
	p.ProjectManager = e
	p.ProjectManagerID = &id
}

func (p *Project) HasEmployee(employeeID int64) bool {
	for _, e := range p.Employees {
		if e != nil && e.ID == employeeID {
			return true
		}
	}
	return false
}

// RemoveEmployee drops employeeID from the staff set and reports whether it was
// present.
func (p *Project) RemoveEmployee(employeeID int64) bool {
	for i, e := range p.Employees {
		if e != nil && e.ID == employeeID {
			p.Employees = append(p.Employees[:i:i], p.Employees[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Project) StaffIDs() []int64 {
	out := make([]int64, 0, len(p.Employees))
	for _, e := range p.Employees {
		if e != nil {
			out = append(out, e.ID)
		}
	}
	return out
}
