package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Mobile       string    `gorm:"type:varchar(20);not null" json:"mobile"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Age          *int      `json:"age,omitempty"`
	Gender       *string   `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Location     *string   `gorm:"type:varchar(200)" json:"location,omitempty"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Assessments   []Assessment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAlerts []Alert      `gorm:"foreignKey:CreatedBy" json:"-"`
}

// SetPassword hashes the plaintext with a fresh salt and stores only the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the candidate matches the stored hash.
// Any mismatch or malformed hash yields false, never an error.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
