package domain

import "github.com/yungbote/staffing-backend/internal/domain/staffing"

type Employee = staffing.Employee
type Project = staffing.Project
type ProjectEmployee = staffing.ProjectEmployee

type ProjectFilter = staffing.ProjectFilter
type ProjectSort = staffing.ProjectSort
type ProjectSortField = staffing.ProjectSortField

const (
	SortByName      = staffing.SortByName
	SortByStartDate = staffing.SortByStartDate
	SortByPriority  = staffing.SortByPriority
)

func ParseProjectSortField(raw string) ProjectSortField { return staffing.ParseProjectSortField(raw) }
