package model

import (
	"fmt"
	"time"
)

// RequestType enum constants
const (
	RequestTypePurchase = "purchase"
	RequestTypeLeave    = "leave"
	RequestTypeOvertime = "overtime"
)

// RequestStatus enum constants
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ValidRequestType reports whether t is one of the supported request types.
func ValidRequestType(t string) bool {
	return t == RequestTypePurchase || t == RequestTypeLeave || t == RequestTypeOvertime
}

// Request represents a unit of work submitted by an employee that needs
// manager approval. Details is a JSON payload whose shape depends on Type.
// A request starts pending and transitions once to approved or rejected;
// only pending requests may be deleted.
type Request struct {
	ID          string     `gorm:"type:varchar(20);primaryKey" json:"id"`
	Type        string     `gorm:"type:varchar(20);not null;index" json:"type"`
	SubmittedBy string     `gorm:"type:varchar(50);not null;index" json:"submitted_by"`
	Submitter   *Employee  `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	SubmittedAt time.Time  `gorm:"not null;index" json:"submitted_at"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ApprovedBy  *string    `gorm:"type:varchar(50)" json:"approved_by"`
	Approver    *Employee  `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at"`
	Details     string     `gorm:"type:jsonb;not null" json:"-"`
	Notes       *string    `gorm:"type:text" json:"notes"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"-"`
}

// NewRequestID formats the nth request id: ordinals are zero-padded to
// three digits, so the 7th request ever created is "req-007".
func NewRequestID(n int64) string {
	return fmt.Sprintf("req-%03d", n)
}
