package dto

import (
	"time"

	"github.com/adityasetu/health-assessment-api/internal/models"
)

// AlertDTO represents an alert in API responses
type AlertDTO struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	TargetLocation *string   `json:"target_location,omitempty"`
	CreatedBy      uint64    `json:"created_by"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToAlertDTO converts an Alert model to AlertDTO
func ToAlertDTO(alert models.Alert) AlertDTO {
	return AlertDTO{
		ID:             alert.ID,
		Title:          alert.Title,
		Message:        alert.Message,
		TargetLocation: alert.TargetLocation,
		CreatedBy:      alert.CreatedBy,
		IsActive:       alert.IsActive,
		CreatedAt:      alert.CreatedAt,
	}
}

// ToAlertDTOs converts a slice of Alert models
func ToAlertDTOs(alerts []models.Alert) []AlertDTO {
	dtos := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		dtos = append(dtos, ToAlertDTO(a))
	}
	return dtos
}
