package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adityasetu/health-assessment-api/internal/constants"
	"github.com/adityasetu/health-assessment-api/internal/models"
	"github.com/adityasetu/health-assessment-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotAuthorized     = errors.New("admin privileges required")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrAlertTitleMissing = errors.New("alert title is required")
	ErrAlertBodyMissing  = errors.New("alert message is required")
)

// AlertService handles broadcast alerts. Creation and deactivation are
// admin-only; the privilege check runs before any write.
type AlertService struct {
	alertRepo repository.AlertRepository
	userRepo  repository.UserRepository
}

// NewAlertService creates a new AlertService.
func NewAlertService(alertRepo repository.AlertRepository, userRepo repository.UserRepository) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		userRepo:  userRepo,
	}
}

// CreateAlertInput represents input for creating an alert.
type CreateAlertInput struct {
	Title          string
	Message        string
	TargetLocation string
}

// Create broadcasts a new alert on behalf of an admin user.
func (s *AlertService) Create(actorID uint64, input CreateAlertInput) (*models.Alert, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" {
		return nil, ErrAlertTitleMissing
	}
	if message == "" {
		return nil, ErrAlertBodyMissing
	}

	alert := &models.Alert{
		Title:     title,
		Message:   message,
		CreatedBy: actorID,
		IsActive:  true,
	}
	if location := strings.TrimSpace(input.TargetLocation); location != "" {
		alert.TargetLocation = &location
	}

	if err := s.alertRepo.Create(alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	return alert, nil
}

// Deactivate logically deletes an alert by clearing its active flag.
func (s *AlertService) Deactivate(actorID, alertID uint64) error {
	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	if err := s.alertRepo.Deactivate(alertID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlertNotFound
		}
		return fmt.Errorf("failed to deactivate alert: %w", err)
	}
	return nil
}

// ListActive returns active alerts, newest first.
func (s *AlertService) ListActive(limit int) ([]models.Alert, error) {
	if limit <= 0 || limit > constants.MaxListLimit {
		limit = constants.DefaultAlertLimit
	}

	alerts, err := s.alertRepo.ListActive(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *AlertService) requireAdmin(actorID uint64) error {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	if !actor.IsAdmin {
		return ErrNotAuthorized
	}
	return nil
}
