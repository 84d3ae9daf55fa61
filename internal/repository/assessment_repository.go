package repository

import (
	"github.com/adityasetu/health-assessment-api/internal/models"
	"gorm.io/gorm"
)

// GormAssessmentRepository is a GORM implementation of AssessmentRepository
type GormAssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new AssessmentRepository
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &GormAssessmentRepository{db: db}
}

// Create creates a new assessment
func (r *GormAssessmentRepository) Create(assessment *models.Assessment) error {
	return r.db.Create(assessment).Error
}

// FindByID finds an assessment by ID
func (r *GormAssessmentRepository) FindByID(id uint64) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

// ListRecentByUser returns a user's assessments, newest first
func (r *GormAssessmentRepository) ListRecentByUser(userID uint64, limit int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
