package database

import (
	"testing"

	"github.com/adityasetu/health-assessment-api/internal/config"
	"github.com/adityasetu/health-assessment-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Assessment{}, &models.Alert{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	db := setupSeedTestDB(t)
	cfg := &config.Config{AdminEmail: "admin@adityasetu.com", AdminPassword: "admin123"}

	require.NoError(t, SeedAdmin(db, cfg))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@adityasetu.com").First(&admin).Error)
	require.True(t, admin.IsAdmin)
	require.True(t, admin.CheckPassword("admin123"))
	require.False(t, admin.CheckPassword("something-else"))
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	db := setupSeedTestDB(t)
	cfg := &config.Config{AdminEmail: "admin@adityasetu.com", AdminPassword: "admin123"}

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSeedAdmin_DoesNotOverwriteExistingAccount(t *testing.T) {
	db := setupSeedTestDB(t)

	existing := &models.User{Name: "Already Here", Email: "admin@adityasetu.com", Mobile: "1234567890"}
	require.NoError(t, existing.SetPassword("original-password"))
	require.NoError(t, db.Create(existing).Error)

	cfg := &config.Config{AdminEmail: "Admin@AdityaSetu.com", AdminPassword: "admin123"}
	require.NoError(t, SeedAdmin(db, cfg))

	var stored models.User
	require.NoError(t, db.Where("email = ?", "admin@adityasetu.com").First(&stored).Error)
	require.Equal(t, "Already Here", stored.Name)
	require.True(t, stored.CheckPassword("original-password"))
}
