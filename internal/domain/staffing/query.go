package staffing

import (
	"strings"
	"time"
)

// ProjectSortField is the closed set of keys projects can be ordered by.
type ProjectSortField string

const (
	SortByName      ProjectSortField = "name"
	SortByStartDate ProjectSortField = "start_date"
	SortByPriority  ProjectSortField = "priority"
)

// ParseProjectSortField maps user input onto a sort key. Matching ignores case,
// underscores and dashes, so "StartDate", "start_date" and "start-date" are the
// same key. Anything unrecognised, including "", sorts by name.
func ParseProjectSortField(raw string) ProjectSortField {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer("_", "", "-", "").Replace(norm)
	switch norm {
	case "startdate":
		return SortByStartDate
	case "priority":
		return SortByPriority
	default:
		return SortByName
	}
}

func (f ProjectSortField) Valid() bool {
	switch f {
	case SortByName, SortByStartDate, SortByPriority:
		return true
	}
	return false
}

// ProjectFilter holds conjunctive, individually optional filters.
type ProjectFilter struct {
	// Name is a case-sensitive substring match. Nil or empty disables it.
	Name *string
	// Inclusive bounds on StartDate.
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	Priority      *int
}

type ProjectSort struct {
	Field      ProjectSortField
	Descending bool
}
