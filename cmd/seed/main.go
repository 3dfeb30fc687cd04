package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"backend/internal/database"
	"backend/internal/model"
	"backend/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed file shapes (snake_case, matching the committed fixtures).

type seedDepartment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type seedEmployee struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID string  `json:"department_id"`
	ManagerID    *string `json:"manager_id"`
	Status       string  `json:"status"`
	JoinDate     string  `json:"join_date"`
	EndDate      *string `json:"end_date"`
}

type seedRequest struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	SubmittedBy string          `json:"submitted_by"`
	SubmittedAt time.Time       `json:"submitted_at"`
	Status      string          `json:"status"`
	ApprovedBy  *string         `json:"approved_by"`
	ApprovedAt  *time.Time      `json:"approved_at"`
	Details     json.RawMessage `json:"details"`
	Notes       *string         `json:"notes"`
}

func main() {
	envErr := godotenv.Load("configs/.env")

	log := logger.FromEnv()
	defer log.Sync()

	if envErr != nil {
		log.Info("no configs/.env file found, using process environment")
	}

	dataDir := os.Getenv("SEED_DATA_DIR")
	if dataDir == "" {
		dataDir = "seed/data"
	}

	db, err := database.NewConnection(databaseDSN())
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if err := run(db, dataDir, log); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	log.Info("seeding finished")
}

func run(db *gorm.DB, dataDir string, log *zap.Logger) error {
	var departments []seedDepartment
	if err := loadJSON(filepath.Join(dataDir, "departments.json"), &departments); err != nil {
		return err
	}
	var employees []seedEmployee
	if err := loadJSON(filepath.Join(dataDir, "employees.json"), &employees); err != nil {
		return err
	}
	var requests []seedRequest
	if err := loadJSON(filepath.Join(dataDir, "requests.json"), &requests); err != nil {
		return err
	}

	if err := validateEmployees(employees); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Wipe in FK-safe order
		for _, m := range []interface{}{&model.Request{}, &model.Employee{}, &model.Department{}} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		for _, d := range departments {
			if err := tx.Create(&model.Department{ID: d.ID, Name: d.Name, Location: d.Location}).Error; err != nil {
				return fmt.Errorf("department %s: %w", d.ID, err)
			}
		}
		log.Info("seeded departments", zap.Int("count", len(departments)))

		// Insert employees without manager references first, then link them.
		// The self-referential FK would otherwise require topological order.
		for _, e := range employees {
			row, err := toEmployee(e)
			if err != nil {
				return err
			}
			row.ManagerID = nil
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("employee %s: %w", e.ID, err)
			}
		}
		for _, e := range employees {
			if e.ManagerID == nil {
				continue
			}
			if err := tx.Model(&model.Employee{}).Where("id = ?", e.ID).
				Update("manager_id", *e.ManagerID).Error; err != nil {
				return fmt.Errorf("employee %s manager link: %w", e.ID, err)
			}
		}
		log.Info("seeded employees", zap.Int("count", len(employees)))

		for _, r := range requests {
			row := &model.Request{
				ID:          r.ID,
				Type:        r.Type,
				SubmittedBy: r.SubmittedBy,
				SubmittedAt: r.SubmittedAt,
				Status:      r.Status,
				ApprovedBy:  r.ApprovedBy,
				ApprovedAt:  r.ApprovedAt,
				Details:     string(r.Details),
				Notes:       r.Notes,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("request %s: %w", r.ID, err)
			}
		}
		log.Info("seeded requests", zap.Int("count", len(requests)))

		return nil
	})
}

// validateEmployees enforces the reporting-tree invariants the API relies
// on: a manager reference must point at another seeded employee, never at
// the employee itself.
func validateEmployees(employees []seedEmployee) error {
	ids := make(map[string]bool, len(employees))
	for _, e := range employees {
		ids[e.ID] = true
	}
	for _, e := range employees {
		if e.ManagerID == nil {
			continue
		}
		if *e.ManagerID == e.ID {
			return fmt.Errorf("employee %s cannot be their own manager", e.ID)
		}
		if !ids[*e.ManagerID] {
			return fmt.Errorf("employee %s references unknown manager %s", e.ID, *e.ManagerID)
		}
	}
	return nil
}

func toEmployee(e seedEmployee) (*model.Employee, error) {
	joinDate, err := time.Parse("2006-01-02", e.JoinDate)
	if err != nil {
		return nil, fmt.Errorf("employee %s: invalid join_date: %w", e.ID, err)
	}
	row := &model.Employee{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		DepartmentID: e.DepartmentID,
		ManagerID:    e.ManagerID,
		Status:       e.Status,
		JoinDate:     joinDate,
	}
	if e.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *e.EndDate)
		if err != nil {
			return nil, fmt.Errorf("employee %s: invalid end_date: %w", e.ID, err)
		}
		row.EndDate = &endDate
	}
	return row, nil
}

func loadJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func databaseDSN() string {
	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	host := get("DB_HOST", "localhost")
	port := get("DB_PORT", "5432")
	user := get("DB_USER", "postgres")
	password := get("DB_PASSWORD", "postgres")
	name := get("DB_NAME", "postgres")
	sslMode := get("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + password + "@" + host + ":" + port + "/" + name + "?sslmode=" + sslMode
}
