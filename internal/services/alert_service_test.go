package services

import (
	"testing"

	"github.com/adityasetu/health-assessment-api/internal/models"
	"github.com/adityasetu/health-assessment-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type alertServiceEnv struct {
	svc     *AlertService
	db      *gorm.DB
	adminID uint64
	userID  uint64
}

func setupAlertService(t *testing.T) alertServiceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Assessment{}, &models.Alert{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	admin := &models.User{Name: "Admin User", Email: "admin@example.com", Mobile: "0000000000", IsAdmin: true}
	require.NoError(t, admin.SetPassword("admin123"))
	require.NoError(t, db.Create(admin).Error)

	user := &models.User{Name: "Regular User", Email: "user@example.com", Mobile: "9876543210"}
	require.NoError(t, user.SetPassword("supersecret"))
	require.NoError(t, db.Create(user).Error)

	svc := NewAlertService(repository.NewAlertRepository(db), repository.NewUserRepository(db))
	return alertServiceEnv{svc: svc, db: db, adminID: admin.ID, userID: user.ID}
}

func TestAlertService_CreateByAdmin(t *testing.T) {
	env := setupAlertService(t)

	alert, err := env.svc.Create(env.adminID, CreateAlertInput{
		Title:          "Lockdown notice",
		Message:        "Stay indoors this weekend.",
		TargetLocation: "Kerala",
	})
	require.NoError(t, err)
	require.NotZero(t, alert.ID)
	require.True(t, alert.IsActive)
	require.Equal(t, env.adminID, alert.CreatedBy)
	require.NotNil(t, alert.TargetLocation)
	require.Equal(t, "Kerala", *alert.TargetLocation)
}

func TestAlertService_CreateByNonAdminFails(t *testing.T) {
	env := setupAlertService(t)

	_, err := env.svc.Create(env.userID, CreateAlertInput{
		Title:   "Not allowed",
		Message: "Should never be stored.",
	})
	require.ErrorIs(t, err, ErrNotAuthorized)

	var count int64
	require.NoError(t, env.db.Model(&models.Alert{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAlertService_CreateValidation(t *testing.T) {
	env := setupAlertService(t)

	_, err := env.svc.Create(env.adminID, CreateAlertInput{Message: "no title"})
	require.ErrorIs(t, err, ErrAlertTitleMissing)

	_, err = env.svc.Create(env.adminID, CreateAlertInput{Title: "no message"})
	require.ErrorIs(t, err, ErrAlertBodyMissing)
}

func TestAlertService_DeactivateHidesFromListing(t *testing.T) {
	env := setupAlertService(t)

	alert, err := env.svc.Create(env.adminID, CreateAlertInput{
		Title:   "Old notice",
		Message: "This will be retired.",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Deactivate(env.adminID, alert.ID))

	alerts, err := env.svc.ListActive(10)
	require.NoError(t, err)
	require.Empty(t, alerts)

	// The row still exists; deletion is logical.
	var stored models.Alert
	require.NoError(t, env.db.First(&stored, alert.ID).Error)
	require.False(t, stored.IsActive)
}

func TestAlertService_DeactivateByNonAdminFails(t *testing.T) {
	env := setupAlertService(t)

	alert, err := env.svc.Create(env.adminID, CreateAlertInput{
		Title:   "Notice",
		Message: "Body",
	})
	require.NoError(t, err)

	err = env.svc.Deactivate(env.userID, alert.ID)
	require.ErrorIs(t, err, ErrNotAuthorized)

	alerts, err := env.svc.ListActive(10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
}

func TestAlertService_DeactivateUnknownAlert(t *testing.T) {
	env := setupAlertService(t)

	err := env.svc.Deactivate(env.adminID, 9999)
	require.ErrorIs(t, err, ErrAlertNotFound)
}

func TestAlertService_ListActiveNewestFirst(t *testing.T) {
	env := setupAlertService(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := env.svc.Create(env.adminID, CreateAlertInput{Title: title, Message: "body"})
		require.NoError(t, err)
	}

	alerts, err := env.svc.ListActive(2)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	require.False(t, alerts[0].CreatedAt.Before(alerts[1].CreatedAt))
}
