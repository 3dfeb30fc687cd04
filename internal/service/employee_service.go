package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
)

// EmployeeResponse is the API shape for employee records.
type EmployeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID string  `json:"departmentId"`
	ManagerID    *string `json:"managerId"`
	Status       string  `json:"status"`
	JoinDate     string  `json:"joinDate"`
	EndDate      *string `json:"endDate"`
}

// EmployeeService exposes read access to the identity store.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService returns a new instance of EmployeeService
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}
	return responses, nil
}

func toEmployeeResponse(e *model.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		DepartmentID: e.DepartmentID,
		ManagerID:    e.ManagerID,
		Status:       e.Status,
		JoinDate:     e.JoinDate.Format("2006-01-02"),
	}
	if e.EndDate != nil {
		end := e.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
