package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/adityasetu/health-assessment-api/internal/config"
	"github.com/adityasetu/health-assessment-api/internal/models"
	"gorm.io/gorm"
)

// SeedAdmin ensures the configured administrator account exists. It is
// idempotent across restarts: the account is created only when no user with
// the admin email is present.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	admin := &models.User{
		Name:    "Admin User",
		Email:   email,
		Mobile:  "0000000000",
		IsAdmin: true,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := db.Create(admin).Error; err != nil {
		// A concurrent startup may have created it first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created default admin user: %s", email)
	return nil
}
