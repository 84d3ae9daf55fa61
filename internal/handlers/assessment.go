package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adityasetu/health-assessment-api/internal/assessment"
	"github.com/adityasetu/health-assessment-api/internal/dto"
	apierrors "github.com/adityasetu/health-assessment-api/internal/errors"
	"github.com/adityasetu/health-assessment-api/internal/middleware"
	"github.com/adityasetu/health-assessment-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AssessmentHandler coordinates questionnaire HTTP handlers.
type AssessmentHandler struct {
	assessmentService *services.AssessmentService
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(assessmentService *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

// GetQuestions returns the fixed questionnaire in catalog order.
func (h *AssessmentHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": assessment.Questions(),
	})
}

// SubmitAssessment scores a questionnaire submission and persists the result.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotAuthenticated(c, "")
		return
	}

	type SubmitRequest struct {
		Answers map[string]string `json:"answers" binding:"required"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.assessmentService.Submit(userID, req.Answers)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssessmentDTO(*record))
}

// ListAssessments returns the caller's assessment history, newest first.
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotAuthenticated(c, "")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	assessments, err := h.assessmentService.ListRecent(userID, limit)
	if err != nil {
		respondAssessmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": dto.ToAssessmentDTOs(assessments),
	})
}

func respondAssessmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoAnswers):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToSaveAssessment):
		apierrors.PersistenceFailure(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
