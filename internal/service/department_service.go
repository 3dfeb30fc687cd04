package service

import (
	"context"
	"fmt"

	"backend/internal/repository"
)

// DepartmentResponse is the API shape for department records.
type DepartmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// DepartmentService exposes read access to departments.
type DepartmentService interface {
	ListDepartments(ctx context.Context, page, limit int) ([]DepartmentResponse, int64, error)
}

type departmentService struct {
	repo repository.DepartmentRepository
}

// NewDepartmentService returns a new instance of DepartmentService
func NewDepartmentService(repo repository.DepartmentRepository) DepartmentService {
	return &departmentService{repo: repo}
}

func (s *departmentService) ListDepartments(ctx context.Context, page, limit int) ([]DepartmentResponse, int64, error) {
	departments, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch departments: %w", err)
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, DepartmentResponse{
			ID:       d.ID,
			Name:     d.Name,
			Location: d.Location,
		})
	}
	return responses, total, nil
}
