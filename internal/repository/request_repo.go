package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

const requestIDPrefix = "req-"

// RequestRepository defines data access for Request entities
type RequestRepository interface {
	Create(ctx context.Context, request *model.Request) error
	GetByID(ctx context.Context, id string) (*model.Request, error)
	ListBySubmitter(ctx context.Context, employeeID string) ([]model.Request, error)
	ListByApproverCandidates(ctx context.Context, managerID string) ([]model.Request, error)
	Update(ctx context.Context, request *model.Request) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository returns a new instance of RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create assigns the next count-based id (req-NNN) and inserts the row in
// one transaction. An advisory lock on the id prefix serializes concurrent
// creations so two callers cannot read the same count.
func (r *requestRepository) Create(ctx context.Context, request *model.Request) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", requestIDPrefix)

		var count int64
		if err := tx.Model(&model.Request{}).Count(&count).Error; err != nil {
			return err
		}

		request.ID = model.NewRequestID(count + 1)
		return tx.Create(request).Error
	})
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*model.Request, error) {
	var request model.Request
	if err := r.db.WithContext(ctx).
		Preload("Submitter").
		Preload("Approver").
		First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) ListBySubmitter(ctx context.Context, employeeID string) ([]model.Request, error) {
	var requests []model.Request
	if err := r.db.WithContext(ctx).
		Where("submitted_by = ?", employeeID).
		Order("submitted_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByApproverCandidates returns the requests submitted by managerID's
// direct reports, newest first, each with its submitter loaded. All
// statuses are included, not only pending ones.
func (r *requestRepository) ListByApproverCandidates(ctx context.Context, managerID string) ([]model.Request, error) {
	var requests []model.Request
	if err := r.db.WithContext(ctx).
		Joins("JOIN employees ON employees.id = requests.submitted_by").
		Where("employees.manager_id = ?", managerID).
		Preload("Submitter").
		Order("requests.submitted_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) Update(ctx context.Context, request *model.Request) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Request{}).Error
}

func (r *requestRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Request{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
