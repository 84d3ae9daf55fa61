package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adityasetu/health-assessment-api/internal/dto"
	apierrors "github.com/adityasetu/health-assessment-api/internal/errors"
	"github.com/adityasetu/health-assessment-api/internal/middleware"
	"github.com/adityasetu/health-assessment-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AlertHandler coordinates alert HTTP handlers.
type AlertHandler struct {
	alertService *services.AlertService
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// ListAlerts returns active alerts, newest first.
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	alerts, err := h.alertService.ListActive(limit)
	if err != nil {
		respondAlertError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": dto.ToAlertDTOs(alerts),
	})
}

// CreateAlert broadcasts a new alert. Admin only.
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotAuthenticated(c, "")
		return
	}

	type CreateAlertRequest struct {
		Title          string `json:"title" binding:"required"`
		Message        string `json:"message" binding:"required"`
		TargetLocation string `json:"target_location"`
	}

	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	alert, err := h.alertService.Create(userID, services.CreateAlertInput{
		Title:          req.Title,
		Message:        req.Message,
		TargetLocation: req.TargetLocation,
	})
	if err != nil {
		respondAlertError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAlertDTO(*alert))
}

// DeactivateAlert logically deletes an alert. Admin only.
func (h *AlertHandler) DeactivateAlert(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.NotAuthenticated(c, "")
		return
	}

	alertID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid alert ID")
		return
	}

	if err := h.alertService.Deactivate(userID, alertID); err != nil {
		respondAlertError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Alert deactivated",
	})
}

func respondAlertError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotAuthorized):
		apierrors.NotAuthorized(c, err.Error())
	case errors.Is(err, services.ErrAlertNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlertTitleMissing),
		errors.Is(err, services.ErrAlertBodyMissing):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotAuthenticated(c, "")
	default:
		apierrors.PersistenceFailure(c, "")
	}
}
