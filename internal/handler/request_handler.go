package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler sets up the routing dependencies for Request endpoints
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/requests")
	{
		requests.GET("", h.GetRequestsForEmployee)
		requests.GET("/:id", h.GetRequestByID)
		requests.POST("", h.CreateRequest)
		requests.PUT("/:id/approved", h.ApproveRequest)
		requests.DELETE("/:id", h.DeleteRequest)
	}
}

// GetRequestsForEmployee handles GET /requests?employeeId=ID
// @Summary      List requests for an employee
// @Description  Returns the employee's own requests plus the requests submitted by their direct reports
// @Tags         requests
// @Produce      json
// @Param        employeeId  query     string  true  "Employee ID"
// @Success      200  {object}  response.Body{data=service.EmployeeRequestsResponse}
// @Failure      400  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /requests [get]
func (h *RequestHandler) GetRequestsForEmployee(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, response.Error("employeeId is required"))
		return
	}

	result, err := h.requestService.GetRequestsForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Success fetch request", result))
}

// GetRequestByID handles GET /requests/:id
// @Summary      Get request by ID
// @Description  Fetch a single request with submitter and approver identities
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.Body{data=service.RequestResponse}
// @Failure      404  {object}  response.Body
// @Router       /requests/{id} [get]
func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	result, err := h.requestService.GetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Success fetch request", result))
}

// CreateRequest handles POST /requests
// @Summary      Create a request
// @Description  Creates a pending purchase, leave, or overtime request for an employee
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateRequestDTO  true  "Create Request Payload"
// @Success      201      {object}  response.Body{data=service.RequestResponse}
// @Failure      400      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("type, submittedBy, and details are required"))
		return
	}

	result, err := h.requestService.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Request created successfully", result))
}

// ApproveRequest handles PUT /requests/:id/approved
// @Summary      Approve or reject a request
// @Description  Transitions a pending request to approved or rejected. Only the submitter's direct manager may decide.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Request ID"
// @Param        payload  body      service.ApproveRequestDTO  true  "Approval Payload"
// @Success      201      {object}  response.Body{data=service.RequestResponse}
// @Failure      400      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Router       /requests/{id}/approved [put]
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	var req service.ApproveRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("status and approvedBy are required"))
		return
	}

	result, err := h.requestService.ApproveRequest(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Request approved successfully", result))
}

// DeleteRequest handles DELETE /requests/:id
// @Summary      Delete a pending request
// @Description  Removes a request that has not yet been approved or rejected
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      201  {object}  response.Body{data=service.RequestResponse}
// @Failure      400  {object}  response.Body
// @Failure      404  {object}  response.Body
// @Router       /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	result, err := h.requestService.DeleteRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("Request deleted successfully", result))
}
