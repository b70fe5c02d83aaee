package bus

import (
	"context"
	"strings"
	"time"

	"github.com/yungbote/staffing-backend/internal/platform/logger"
)

type EventType string

const (
	EventProjectCreated  EventType = "project.created"
	EventProjectUpdated  EventType = "project.updated"
	EventProjectDeleted  EventType = "project.deleted"
	EventEmployeeAdded   EventType = "project.employee_added"
	EventEmployeeRemoved EventType = "project.employee_removed"
)

// ProjectEvent announces a committed change to a project or its staff.
type ProjectEvent struct {
	Type       EventType `json:"type"`
	ProjectID  int64     `json:"project_id"`
	EmployeeID *int64    `json:"employee_id,omitempty"`
	At         time.Time `json:"at"`
}

func NewProjectEvent(t EventType, projectID int64) ProjectEvent {
	return ProjectEvent{Type: t, ProjectID: projectID, At: time.Now().UTC()}
}

func NewStaffEvent(t EventType, projectID, employeeID int64) ProjectEvent {
	ev := NewProjectEvent(t, projectID)
	ev.EmployeeID = &employeeID
	return ev
}

type Bus interface {
	Publish(ctx context.Context, ev ProjectEvent) error
	Close() error
}

// Config selects the bus implementation. An empty Addr yields a no-op bus.
type Config struct {
	Addr    string
	Channel string
}

func New(log *logger.Logger, cfg Config) (Bus, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return NewNoopBus(), nil
	}
	return NewRedisBus(log, cfg)
}
