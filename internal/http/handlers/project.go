package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/staffing-backend/internal/domain"
	domainagg "github.com/yungbote/staffing-backend/internal/domain/aggregates"
	"github.com/yungbote/staffing-backend/internal/http/response"
	"github.com/yungbote/staffing-backend/internal/observability"
	"github.com/yungbote/staffing-backend/internal/platform/logger"
	"github.com/yungbote/staffing-backend/internal/realtime/bus"
	"github.com/yungbote/staffing-backend/internal/services"
)

type ProjectHandler struct {
	log      *logger.Logger
	projects services.ProjectService
	events   bus.Bus
	metrics  *observability.Metrics
}

func NewProjectHandler(log *logger.Logger, projects services.ProjectService, events bus.Bus, metrics *observability.Metrics) *ProjectHandler {
	if events == nil {
		events = bus.NewNoopBus()
	}
	return &ProjectHandler{
		log:      log.With("handler", "ProjectHandler"),
		projects: projects,
		events:   events,
		metrics:  metrics,
	}
}

type projectRequest struct {
	Name            string `json:"name"`
	CustomerCompany string `json:"customer_company"`
	ExecutorCompany string `json:"executor_company"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Priority        int    `json:"priority"`
	ManagerID       *int64 `json:"manager_id"`
	// Omitted on update means "clear the staff set".
	StaffIDs *[]int64 `json:"staff_ids"`
}

func (r projectRequest) toInput() (services.ProjectInput, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return services.ProjectInput{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return services.ProjectInput{}, err
	}
	in := services.ProjectInput{
		Name:            strings.TrimSpace(r.Name),
		CustomerCompany: strings.TrimSpace(r.CustomerCompany),
		ExecutorCompany: strings.TrimSpace(r.ExecutorCompany),
		StartDate:       start,
		EndDate:         end,
		Priority:        r.Priority,
		ManagerID:       r.ManagerID,
	}
	if r.StaffIDs != nil {
		in.StaffIDs = *r.StaffIDs
	}
	return in, nil
}

func (r projectRequest) toUpdate() (services.ProjectUpdate, error) {
	in, err := r.toInput()
	if err != nil {
		return services.ProjectUpdate{}, err
	}
	return services.ProjectUpdate{
		Name:            in.Name,
		CustomerCompany: in.CustomerCompany,
		ExecutorCompany: in.ExecutorCompany,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Priority:        in.Priority,
		ManagerID:       in.ManagerID,
		StaffIDs:        r.StaffIDs,
	}, nil
}

func bindProject(c *gin.Context) (projectRequest, error) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, domainagg.InvalidArgument("handlers.bindProject", "invalid request body: "+err.Error())
	}
	return req, nil
}

// GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projects.GetAllProjects(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}

// GET /api/projects/search
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	q := services.ProjectQuery{
		SortField: types.ParseProjectSortField(c.Query("sort")),
	}
	if name, ok := c.GetQuery("name"); ok {
		q.Name = &name
	}
	var err error
	if q.StartDateFrom, err = queryDate(c, "start_from"); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	if q.StartDateTo, err = queryDate(c, "start_to"); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	if q.Priority, err = queryInt(c, "priority"); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	if q.SortDescending, err = queryBool(c, "desc"); err != nil {
		response.RespondDomainError(c, err)
		return
	}

	projects, err := h.projects.GetFilteredProjects(c.Request.Context(), q)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}

// GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	project, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"project": project})
}

// POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req, err := bindProject(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	in, err := req.toInput()
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	project, err := h.projects.CreateProject(c.Request.Context(), in)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	h.publish(c.Request.Context(), bus.NewProjectEvent(bus.EventProjectCreated, project.ID))
	response.RespondCreated(c, gin.H{"project": project})
}

// PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	req, err := bindProject(c)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	upd, err := req.toUpdate()
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	project, err := h.projects.UpdateProject(c.Request.Context(), id, upd)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	h.publish(c.Request.Context(), bus.NewProjectEvent(bus.EventProjectUpdated, project.ID))
	response.RespondOK(c, gin.H{"project": project})
}

// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	if err := h.projects.DeleteProject(c.Request.Context(), id); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	h.publish(c.Request.Context(), bus.NewProjectEvent(bus.EventProjectDeleted, id))
	response.RespondNoContent(c)
}

// POST /api/projects/:id/employees/:employeeId
func (h *ProjectHandler) AddEmployee(c *gin.Context) {
	projectID, employeeID, ok := h.staffParams(c)
	if !ok {
		return
	}
	if err := h.projects.AddEmployeeToProject(c.Request.Context(), projectID, employeeID); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	h.publish(c.Request.Context(), bus.NewStaffEvent(bus.EventEmployeeAdded, projectID, employeeID))
	response.RespondNoContent(c)
}

// DELETE /api/projects/:id/employees/:employeeId
func (h *ProjectHandler) RemoveEmployee(c *gin.Context) {
	projectID, employeeID, ok := h.staffParams(c)
	if !ok {
		return
	}
	if err := h.projects.RemoveEmployeeFromProject(c.Request.Context(), projectID, employeeID); err != nil {
		response.RespondDomainError(c, err)
		return
	}
	h.publish(c.Request.Context(), bus.NewStaffEvent(bus.EventEmployeeRemoved, projectID, employeeID))
	response.RespondNoContent(c)
}

func (h *ProjectHandler) staffParams(c *gin.Context) (int64, int64, bool) {
	projectID, err := pathID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return 0, 0, false
	}
	employeeID, err := pathID(c, "employeeId")
	if err != nil {
		response.RespondDomainError(c, err)
		return 0, 0, false
	}
	return projectID, employeeID, true
}

// publish never fails the request; the change is already committed.
func (h *ProjectHandler) publish(ctx context.Context, ev bus.ProjectEvent) {
	err := h.events.Publish(ctx, ev)
	h.metrics.IncEvent(string(ev.Type), err)
	if err != nil {
		h.log.Warn("Project event publish failed", "type", ev.Type, "project_id", ev.ProjectID, "error", err)
	}
}
