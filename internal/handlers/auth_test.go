package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adityasetu/health-assessment-api/internal/database"
	"github.com/adityasetu/health-assessment-api/internal/dto"
	apierrors "github.com/adityasetu/health-assessment-api/internal/errors"
	"github.com/adityasetu/health-assessment-api/internal/middleware"
	"github.com/adityasetu/health-assessment-api/internal/models"
	"github.com/adityasetu/health-assessment-api/internal/repository"
	"github.com/adityasetu/health-assessment-api/internal/services"
	"github.com/adityasetu/health-assessment-api/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	handler     *AuthHandler
	authService *services.AuthService
	sessions    session.Store
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Assessment{},
		&models.Alert{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	sessions := session.NewMemoryStore(time.Hour)
	handler := NewAuthHandler(authService, sessions)

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	r.GET("/api/auth/me", middleware.RequireAuth(sessions), handler.GetCurrentUser)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		router:      r,
		handler:     handler,
		authService: authService,
		sessions:    sessions,
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/register", map[string]any{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"mobile":   "9876543210",
		"password": "supersecret",
		"location": "Kerala",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "asha@example.com", response.Email)
	require.NotNil(t, response.Location)
	require.False(t, response.IsAdmin)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	env := setupAuthTestEnv(t)

	payload := map[string]any{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"mobile":   "9876543210",
		"password": "supersecret",
	}

	w := postJSON(t, env.router, "/api/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, env.router, "/api/auth/register", payload, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeDuplicateEmail, apiErr.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAuthHandler_RegisterMissingFields(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := postJSON(t, env.router, "/api/auth/register", map[string]any{
		"email":    "asha@example.com",
		"password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "supersecret",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string      `json:"token"`
		User  dto.UserDTO `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	require.Equal(t, "asha@example.com", response.User.Email)

	// The issued token resolves to the user in the session store.
	userID, ok := env.sessions.Get(response.Token)
	require.True(t, ok)
	require.Equal(t, response.User.ID, userID)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Password: "supersecret",
	})
	require.NoError(t, err)

	wrongPassword := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong",
	}, nil)
	unknownUser := postJSON(t, env.router, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	}, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// Both failure modes produce identical bodies so account existence
	// cannot be probed.
	require.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := session.NewToken()
	require.NoError(t, err)
	require.NoError(t, env.sessions.Put(token, user.ID))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Email, response.Email)
}

func TestAuthHandler_GetCurrentUserAnonymous(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, apierrors.ErrCodeNotAuthenticated, apiErr.Code)
}

func TestAuthHandler_LogoutInvalidatesToken(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Password: "supersecret",
	})
	require.NoError(t, err)

	token, err := session.NewToken()
	require.NoError(t, err)
	require.NoError(t, env.sessions.Put(token, user.ID))

	w := postJSON(t, env.router, "/api/auth/logout", map[string]string{}, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := env.sessions.Get(token)
	require.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
