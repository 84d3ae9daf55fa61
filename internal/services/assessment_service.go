package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adityasetu/health-assessment-api/internal/assessment"
	"github.com/adityasetu/health-assessment-api/internal/constants"
	"github.com/adityasetu/health-assessment-api/internal/models"
	"github.com/adityasetu/health-assessment-api/internal/repository"
)

var (
	ErrNoAnswers              = errors.New("at least one answer is required")
	ErrFailedToSaveAssessment = errors.New("failed to save assessment")
)

// AssessmentService handles questionnaire submissions and history reads.
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepository
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(assessmentRepo repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
	}
}

// Submit scores the raw answers, classifies the result, generates the
// recommendations and persists the whole assessment for the user. The stored
// score and level are always mutually consistent because both derive from the
// same parsed answers in one pass.
func (s *AssessmentService) Submit(userID uint64, rawAnswers map[string]string) (*models.Assessment, error) {
	if len(rawAnswers) == 0 {
		return nil, ErrNoAnswers
	}

	parsed := assessment.ParseAnswers(rawAnswers)
	score := assessment.Score(parsed)
	level := assessment.Classify(score)
	recommendations := assessment.Recommend(level, parsed)

	record := &models.Assessment{
		UserID:          userID,
		Answers:         rawAnswers,
		RiskScore:       score,
		RiskLevel:       level,
		Recommendations: strings.Join(recommendations, "\n"),
	}

	if err := s.assessmentRepo.Create(record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToSaveAssessment, err)
	}

	return record, nil
}

// ListRecent returns the user's assessments, newest first. A non-positive or
// oversized limit falls back to the default.
func (s *AssessmentService) ListRecent(userID uint64, limit int) ([]models.Assessment, error) {
	if limit <= 0 || limit > constants.MaxListLimit {
		limit = constants.DefaultAssessmentLimit
	}

	assessments, err := s.assessmentRepo.ListRecentByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}
