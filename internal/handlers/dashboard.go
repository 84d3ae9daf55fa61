package handlers

import (
	"net/http"

	"github.com/adityasetu/health-assessment-api/internal/constants"
	"github.com/adityasetu/health-assessment-api/internal/covid"
	"github.com/adityasetu/health-assessment-api/internal/dto"
	apierrors "github.com/adityasetu/health-assessment-api/internal/errors"
	"github.com/adityasetu/health-assessment-api/internal/middleware"
	"github.com/adityasetu/health-assessment-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler assembles the per-user dashboard view: latest and recent
// assessments, active alerts, and the case count for the user's location.
type DashboardHandler struct {
	authService       *services.AuthService
	assessmentService *services.AssessmentService
	alertService      *services.AlertService
	covidData         covid.Data
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	authService *services.AuthService,
	assessmentService *services.AssessmentService,
	alertService *services.AlertService,
	covidData covid.Data,
) *DashboardHandler {
	return &DashboardHandler{
		authService:       authService,
		assessmentService: assessmentService,
		alertService:      alertService,
		covidData:         covidData,
	}
}

// GetDashboard returns the dashboard payload for the authenticated user.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotAuthenticated(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	recent, err := h.assessmentService.ListRecent(userID, constants.DefaultAssessmentLimit)
	if err != nil {
		apierrors.PersistenceFailure(c, "")
		return
	}

	alerts, err := h.alertService.ListActive(constants.DefaultAlertLimit)
	if err != nil {
		apierrors.PersistenceFailure(c, "")
		return
	}

	response := gin.H{
		"user":               dto.ToUserDTO(*user),
		"recent_assessments": dto.ToAssessmentDTOs(recent),
		"alerts":             dto.ToAlertDTOs(alerts),
	}

	if len(recent) > 0 {
		latest := dto.ToAssessmentDTO(recent[0])
		response["latest_assessment"] = latest
	}

	if user.Location != nil {
		if cases, ok := h.covidData.Lookup(*user.Location); ok {
			response["covid_cases"] = cases
		}
	}

	c.JSON(http.StatusOK, response)
}
