package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService service.DepartmentService
}

// NewDepartmentHandler sets up the routing dependencies for Department endpoints
func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *DepartmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/departments", h.ListDepartments)
}

// ListDepartments handles GET /departments with pagination controls
// @Summary      List departments
// @Description  Retrieves a paginated list of departments
// @Tags         departments
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 20, max 100)"
// @Success      200    {object}  response.Body{data=object}
// @Failure      500    {object}  response.Body
// @Router       /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	params := pagination.Parse(c)

	departments, total, err := h.departmentService.ListDepartments(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Success fetch departments", map[string]interface{}{
		"departments": departments,
		"total":       total,
		"page":        params.Page,
		"limit":       params.Limit,
	}))
}
