package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/internal/service"
	"backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRequestService struct {
	getForEmployeeFunc func(ctx context.Context, employeeID string) (*service.EmployeeRequestsResponse, error)
	getByIDFunc        func(ctx context.Context, id string) (*service.RequestResponse, error)
	createFunc         func(ctx context.Context, req service.CreateRequestDTO) (*service.RequestResponse, error)
	approveFunc        func(ctx context.Context, id string, req service.ApproveRequestDTO) (*service.RequestResponse, error)
	deleteFunc         func(ctx context.Context, id string) (*service.RequestResponse, error)
}

func (m *mockRequestService) GetRequestsForEmployee(ctx context.Context, employeeID string) (*service.EmployeeRequestsResponse, error) {
	if m.getForEmployeeFunc != nil {
		return m.getForEmployeeFunc(ctx, employeeID)
	}
	return &service.EmployeeRequestsResponse{Requests: []service.RequestResponse{}, Approver: []service.RequestResponse{}}, nil
}

func (m *mockRequestService) GetRequestByID(ctx context.Context, id string) (*service.RequestResponse, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &service.RequestResponse{ID: id}, nil
}

func (m *mockRequestService) CreateRequest(ctx context.Context, req service.CreateRequestDTO) (*service.RequestResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &service.RequestResponse{ID: "req-001", Type: req.Type, Status: "pending"}, nil
}

func (m *mockRequestService) ApproveRequest(ctx context.Context, id string, req service.ApproveRequestDTO) (*service.RequestResponse, error) {
	if m.approveFunc != nil {
		return m.approveFunc(ctx, id, req)
	}
	return &service.RequestResponse{ID: id, Status: req.Status}, nil
}

func (m *mockRequestService) DeleteRequest(ctx context.Context, id string) (*service.RequestResponse, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return &service.RequestResponse{ID: id, Status: "pending"}, nil
}

func newRouter(svc service.RequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewRequestHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetRequestsForEmployee(t *testing.T) {
	t.Run("missing employeeId", func(t *testing.T) {
		router := newRouter(&mockRequestService{})
		w := doRequest(router, http.MethodGet, "/requests", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "employeeId is required", body["message"])
		assert.NotContains(t, body, "data")
	})

	t.Run("unknown employee maps to 404", func(t *testing.T) {
		svc := &mockRequestService{
			getForEmployeeFunc: func(ctx context.Context, employeeID string) (*service.EmployeeRequestsResponse, error) {
				return nil, apperror.NotFound("Employee with id emp-999 not found")
			},
		}
		w := doRequest(newRouter(svc), http.MethodGet, "/requests?employeeId=emp-999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Employee with id emp-999 not found", decodeBody(t, w)["message"])
	})

	t.Run("success envelope", func(t *testing.T) {
		w := doRequest(newRouter(&mockRequestService{}), http.MethodGet, "/requests?employeeId=emp-002", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Success fetch request", body["message"])
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, data, "requests")
		assert.Contains(t, data, "approver")
	})
}

func TestCreateRequestHandler(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(newRouter(&mockRequestService{}), http.MethodPost, "/requests", `{"type":"leave"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "type, submittedBy, and details are required", decodeBody(t, w)["message"])
	})

	t.Run("created", func(t *testing.T) {
		svc := &mockRequestService{
			createFunc: func(ctx context.Context, req service.CreateRequestDTO) (*service.RequestResponse, error) {
				assert.Equal(t, "overtime", req.Type)
				assert.Equal(t, "emp-004", req.SubmittedBy)
				return &service.RequestResponse{ID: "req-010", Type: req.Type, Status: "pending"}, nil
			},
		}
		payload := `{"type":"overtime","submittedBy":"emp-004","details":{"date":"2025-05-17","hours":4,"reason":"Incident"}}`
		w := doRequest(newRouter(svc), http.MethodPost, "/requests", payload)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Request created successfully", body["message"])
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "req-010", data["id"])
	})

	t.Run("unknown submitter", func(t *testing.T) {
		svc := &mockRequestService{
			createFunc: func(ctx context.Context, req service.CreateRequestDTO) (*service.RequestResponse, error) {
				return nil, apperror.NotFound("Employee with id emp-999 not found")
			},
		}
		payload := `{"type":"overtime","submittedBy":"emp-999","details":{"date":"2025-05-17","hours":4,"reason":"x"}}`
		w := doRequest(newRouter(svc), http.MethodPost, "/requests", payload)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApproveRequestHandler(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(newRouter(&mockRequestService{}), http.MethodPut, "/requests/req-003/approved", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "status and approvedBy are required", decodeBody(t, w)["message"])
	})

	t.Run("invalid status value", func(t *testing.T) {
		w := doRequest(newRouter(&mockRequestService{}), http.MethodPut, "/requests/req-003/approved",
			`{"status":"maybe","approvedBy":"emp-002"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unauthorized approver maps to 400", func(t *testing.T) {
		svc := &mockRequestService{
			approveFunc: func(ctx context.Context, id string, req service.ApproveRequestDTO) (*service.RequestResponse, error) {
				return nil, apperror.BadRequest("Only this employee's manager can approve the request")
			},
		}
		w := doRequest(newRouter(svc), http.MethodPut, "/requests/req-003/approved",
			`{"status":"approved","approvedBy":"emp-005"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("approved", func(t *testing.T) {
		w := doRequest(newRouter(&mockRequestService{}), http.MethodPut, "/requests/req-003/approved",
			`{"status":"approved","approvedBy":"emp-002"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Request approved successfully", body["message"])
	})
}

func TestDeleteRequestHandler(t *testing.T) {
	t.Run("non-pending maps to 400", func(t *testing.T) {
		svc := &mockRequestService{
			deleteFunc: func(ctx context.Context, id string) (*service.RequestResponse, error) {
				return nil, apperror.BadRequest("Only pending requests can be deleted")
			},
		}
		w := doRequest(newRouter(svc), http.MethodDelete, "/requests/req-001", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		w := doRequest(newRouter(&mockRequestService{}), http.MethodDelete, "/requests/req-003", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Request deleted successfully", decodeBody(t, w)["message"])
	})

	t.Run("unclassified error stays generic", func(t *testing.T) {
		svc := &mockRequestService{
			deleteFunc: func(ctx context.Context, id string) (*service.RequestResponse, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		w := doRequest(newRouter(svc), http.MethodDelete, "/requests/req-003", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decodeBody(t, w)["message"])
	})
}
