package repository

import (
	"github.com/adityasetu/health-assessment-api/internal/models"
	"gorm.io/gorm"
)

// GormAlertRepository is a GORM implementation of AlertRepository
type GormAlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new AlertRepository
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &GormAlertRepository{db: db}
}

// Create creates a new alert
func (r *GormAlertRepository) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

// FindByID finds an alert by ID
func (r *GormAlertRepository) FindByID(id uint64) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

// ListActive returns active alerts, newest first
func (r *GormAlertRepository) ListActive(limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// Deactivate flips the active flag off
func (r *GormAlertRepository) Deactivate(id uint64) error {
	result := r.db.Model(&models.Alert{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
