package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/staffing-backend/internal/http/response"
	"github.com/yungbote/staffing-backend/internal/services"
)

type EmployeeHandler struct {
	employees services.EmployeeService
}

func NewEmployeeHandler(employees services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// GET /api/employees?name=
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	name, filtered := c.GetQuery("name")

	var (
		out any
		err error
	)
	if filtered {
		out, err = h.employees.SearchByName(ctx, name)
	} else {
		out, err = h.employees.ListEmployees(ctx)
	}
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employees": out})
}

// GET /api/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	employee, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"employee": employee})
}
