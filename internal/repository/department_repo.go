package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

// DepartmentRepository defines read access to Department entities
type DepartmentRepository interface {
	List(ctx context.Context, page, limit int) ([]model.Department, int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository returns a new instance of DepartmentRepository
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context, page, limit int) ([]model.Department, int64, error) {
	var departments []model.Department
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&departments).Error; err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}
