package database

import (
	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM and
// auto-migrates the core models. Migration order matters: requests
// reference employees, employees reference departments.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Department{},
		&model.Employee{},
		&model.Request{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
