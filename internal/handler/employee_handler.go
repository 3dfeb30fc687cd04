package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler sets up the routing dependencies for Employee endpoints
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/employees", h.ListEmployees)
}

// ListEmployees handles GET /employees
// @Summary      List employees
// @Description  Retrieves all employees in the identity store
// @Tags         employees
// @Produce      json
// @Success      200  {object}  response.Body{data=[]service.EmployeeResponse}
// @Failure      500  {object}  response.Body
// @Router       /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Success fetch employees", employees))
}
