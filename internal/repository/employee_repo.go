package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// EmployeeRepository defines read access to Employee entities. Employees
// are seed-managed, so no mutation methods are exposed.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns a new instance of EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID string) ([]model.Employee, error) {
	var employees []model.Employee
	if err := r.db.WithContext(ctx).Where("manager_id = ?", managerID).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
