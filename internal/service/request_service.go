package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"

	"gorm.io/gorm"
)

// --- DTOs ---

type CreateRequestDTO struct {
	Type        string          `json:"type" binding:"required"`
	SubmittedBy string          `json:"submittedBy" binding:"required"`
	Details     json.RawMessage `json:"details" binding:"required"`
	Notes       *string         `json:"notes"`
}

type ApproveRequestDTO struct {
	Status     string `json:"status" binding:"required,oneof=approved rejected"`
	ApprovedBy string `json:"approvedBy" binding:"required"`
}

// EmployeeSummary identifies a submitter or approver on a request payload.
type EmployeeSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID string  `json:"departmentId"`
	ManagerID    *string `json:"managerId"`
	Status       string  `json:"status"`
}

type RequestResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	SubmittedBy string           `json:"submittedBy"`
	SubmittedAt string           `json:"submittedAt"`
	Status      string           `json:"status"`
	ApprovedBy  *string          `json:"approvedBy"`
	ApprovedAt  *string          `json:"approvedAt"`
	Details     json.RawMessage  `json:"details"`
	Notes       *string          `json:"notes"`
	Submitter   *EmployeeSummary `json:"submitter,omitempty"`
	Approver    *EmployeeSummary `json:"approver,omitempty"`
}

// EmployeeRequestsResponse pairs an employee's own requests with the
// requests awaiting them as an approver. The approver list carries every
// request from direct reports regardless of status, matching the behavior
// clients already depend on.
type EmployeeRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
	Approver []RequestResponse `json:"approver"`
}

// --- Interface ---

// RequestService holds every business rule of the request lifecycle:
// creation, lookup, manager-gated approval, and deletion.
type RequestService interface {
	GetRequestsForEmployee(ctx context.Context, employeeID string) (*EmployeeRequestsResponse, error)
	GetRequestByID(ctx context.Context, id string) (*RequestResponse, error)
	CreateRequest(ctx context.Context, req CreateRequestDTO) (*RequestResponse, error)
	ApproveRequest(ctx context.Context, id string, req ApproveRequestDTO) (*RequestResponse, error)
	DeleteRequest(ctx context.Context, id string) (*RequestResponse, error)
}

type requestService struct {
	requests  repository.RequestRepository
	employees repository.EmployeeRepository
}

// NewRequestService returns a new instance of RequestService
func NewRequestService(requests repository.RequestRepository, employees repository.EmployeeRepository) RequestService {
	return &requestService{requests: requests, employees: employees}
}

// --- Implementation ---

func (s *requestService) GetRequestsForEmployee(ctx context.Context, employeeID string) (*EmployeeRequestsResponse, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, employeeNotFound(err, employeeID)
	}

	own, err := s.requests.ListBySubmitter(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	reports, err := s.requests.ListByApproverCandidates(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch approver requests: %w", err)
	}

	return &EmployeeRequestsResponse{
		Requests: toRequestResponses(own),
		Approver: toRequestResponses(reports),
	}, nil
}

func (s *requestService) GetRequestByID(ctx context.Context, id string) (*RequestResponse, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, requestNotFound(err, id)
	}
	return toRequestResponse(request), nil
}

func (s *requestService) CreateRequest(ctx context.Context, req CreateRequestDTO) (*RequestResponse, error) {
	employee, err := s.employees.GetByID(ctx, req.SubmittedBy)
	if err != nil {
		return nil, employeeNotFound(err, req.SubmittedBy)
	}

	if !model.ValidRequestType(req.Type) {
		return nil, apperror.BadRequest("Invalid request type. Must be one of: purchase, leave, overtime")
	}

	if err := model.ValidateDetails(req.Type, req.Details); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	request := &model.Request{
		Type:        req.Type,
		SubmittedBy: req.SubmittedBy,
		SubmittedAt: time.Now(),
		Status:      model.RequestStatusPending,
		Details:     string(req.Details),
		Notes:       req.Notes,
	}

	// The store assigns the req-NNN id under its advisory lock.
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	request.Submitter = employee
	return toRequestResponse(request), nil
}

func (s *requestService) ApproveRequest(ctx context.Context, id string, req ApproveRequestDTO) (*RequestResponse, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, requestNotFound(err, id)
	}

	// Only the submitter's direct manager may decide the request. The
	// comparison is by identity, never by role or department.
	if request.Submitter == nil || request.Submitter.ManagerID == nil || *request.Submitter.ManagerID != req.ApprovedBy {
		return nil, apperror.BadRequest("Only this employee's manager can approve the request")
	}

	if request.Status != model.RequestStatusPending {
		return nil, apperror.BadRequest(fmt.Sprintf("Request is already %s", request.Status))
	}

	now := time.Now()
	request.Status = req.Status
	request.ApprovedBy = &req.ApprovedBy
	request.ApprovedAt = &now

	if err := s.requests.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	// Reload to pick up the approver identity.
	updated, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload request: %w", err)
	}

	return toRequestResponse(updated), nil
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) (*RequestResponse, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, requestNotFound(err, id)
	}

	if request.Status != model.RequestStatusPending {
		return nil, apperror.BadRequest("Only pending requests can be deleted")
	}

	prior := toRequestResponse(request)
	if err := s.requests.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete request: %w", err)
	}

	return prior, nil
}

// --- Helpers ---

func employeeNotFound(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(fmt.Sprintf("Employee with id %s not found", id))
	}
	return err
}

func requestNotFound(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(fmt.Sprintf("Request with id %s not found", id))
	}
	return err
}

func toEmployeeSummary(e *model.Employee) *EmployeeSummary {
	if e == nil {
		return nil
	}
	return &EmployeeSummary{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		DepartmentID: e.DepartmentID,
		ManagerID:    e.ManagerID,
		Status:       e.Status,
	}
}

func toRequestResponse(r *model.Request) *RequestResponse {
	resp := &RequestResponse{
		ID:          r.ID,
		Type:        r.Type,
		SubmittedBy: r.SubmittedBy,
		SubmittedAt: r.SubmittedAt.Format(time.RFC3339),
		Status:      r.Status,
		ApprovedBy:  r.ApprovedBy,
		Details:     json.RawMessage(r.Details),
		Notes:       r.Notes,
		Submitter:   toEmployeeSummary(r.Submitter),
		Approver:    toEmployeeSummary(r.Approver),
	}
	if r.ApprovedAt != nil {
		at := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

func toRequestResponses(requests []model.Request) []RequestResponse {
	result := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toRequestResponse(&requests[i]))
	}
	return result
}
