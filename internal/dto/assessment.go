package dto

import (
	"strings"
	"time"

	"github.com/adityasetu/health-assessment-api/internal/models"
)

// AssessmentDTO represents an assessment in API responses. Recommendations
// are returned as the ordered list the generator produced.
type AssessmentDTO struct {
	ID              uint64            `json:"id"`
	UserID          uint64            `json:"user_id"`
	Answers         map[string]string `json:"answers"`
	RiskScore       int               `json:"risk_score"`
	RiskLevel       models.RiskLevel  `json:"risk_level"`
	Recommendations []string          `json:"recommendations"`
	CreatedAt       time.Time         `json:"created_at"`
}

// ToAssessmentDTO converts an Assessment model to AssessmentDTO
func ToAssessmentDTO(a models.Assessment) AssessmentDTO {
	var recommendations []string
	if a.Recommendations != "" {
		recommendations = strings.Split(a.Recommendations, "\n")
	}
	return AssessmentDTO{
		ID:              a.ID,
		UserID:          a.UserID,
		Answers:         a.Answers,
		RiskScore:       a.RiskScore,
		RiskLevel:       a.RiskLevel,
		Recommendations: recommendations,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAssessmentDTOs converts a slice of Assessment models
func ToAssessmentDTOs(assessments []models.Assessment) []AssessmentDTO {
	dtos := make([]AssessmentDTO, 0, len(assessments))
	for _, a := range assessments {
		dtos = append(dtos, ToAssessmentDTO(a))
	}
	return dtos
}
