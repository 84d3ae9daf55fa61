package repository

import (
	"github.com/adityasetu/health-assessment-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (emails are stored lowercased)
	FindByEmail(email string) (*models.User, error)
}

// AssessmentRepository defines the interface for assessment data access.
// Assessments are immutable: there is no update or delete path.
type AssessmentRepository interface {
	// Create creates a new assessment
	Create(assessment *models.Assessment) error

	// FindByID finds an assessment by ID
	FindByID(id uint64) (*models.Assessment, error)

	// ListRecentByUser returns a user's assessments, newest first
	ListRecentByUser(userID uint64, limit int) ([]models.Assessment, error)
}

// AlertRepository defines the interface for alert data access
type AlertRepository interface {
	// Create creates a new alert
	Create(alert *models.Alert) error

	// FindByID finds an alert by ID
	FindByID(id uint64) (*models.Alert, error)

	// ListActive returns active alerts, newest first
	ListActive(limit int) ([]models.Alert, error)

	// Deactivate flips the active flag off; rows are never removed
	Deactivate(id uint64) error
}
