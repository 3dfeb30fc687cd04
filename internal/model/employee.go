package model

import "time"

// EmployeeStatus enum constants
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee is the central identity entity. ManagerID is a self-reference:
// an employee's manager is another employee, or none for the top of the
// reporting tree. Employees and departments are managed by the seeder —
// the HTTP surface never mutates them.
type Employee struct {
	ID           string      `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name         string      `gorm:"type:varchar(255);not null" json:"name"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role         string      `gorm:"type:varchar(100);not null" json:"role"`
	DepartmentID string      `gorm:"type:varchar(50);not null;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	ManagerID    *string     `gorm:"type:varchar(50);index" json:"manager_id"`
	Manager      *Employee   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Status       string      `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	JoinDate     time.Time   `gorm:"not null" json:"join_date"`
	EndDate      *time.Time  `json:"end_date"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
