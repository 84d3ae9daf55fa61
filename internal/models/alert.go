package models

import "time"

// Alert is an administrator-broadcast announcement. Deactivation is logical:
// read paths filter on IsActive rather than deleting rows.
type Alert struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Title          string    `gorm:"type:varchar(200);not null" json:"title"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	TargetLocation *string   `gorm:"type:varchar(200)" json:"target_location,omitempty"`
	CreatedBy      uint64    `gorm:"not null" json:"created_by"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	// Relations
	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}
