package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/adityasetu/health-assessment-api/internal/constants"
	"github.com/adityasetu/health-assessment-api/internal/dto"
	apierrors "github.com/adityasetu/health-assessment-api/internal/errors"
	"github.com/adityasetu/health-assessment-api/internal/middleware"
	"github.com/adityasetu/health-assessment-api/internal/services"
	"github.com/adityasetu/health-assessment-api/internal/session"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	sessions    session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, sessions session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Mobile   string `json:"mobile" binding:"required"`
		Password string `json:"password" binding:"required"`
		Age      *int   `json:"age"`
		Gender   string `json:"gender"`
		Location string `json:"location"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Location: req.Location,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user and issues a fresh session token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := session.NewToken()
	if err != nil {
		apierrors.InternalError(c, "Failed to create session")
		return
	}
	if err := h.sessions.Put(token, user.ID); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  dto.ToUserDTO(*user),
	})
}

// Logout invalidates the caller's session token.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := extractLogoutToken(c); token != "" {
		h.sessions.Remove(token)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
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

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func extractLogoutToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	if cookie, err := c.Cookie(constants.SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingField):
		apierrors.BadRequest(c, "Name, email, mobile and password are required")
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrAgeOutOfRange):
		apierrors.BadRequest(c, fmt.Sprintf("Age must be between %d and %d", constants.MinAge, constants.MaxAge))
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.DuplicateEmail(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.PersistenceFailure(c, "")
	}
}
