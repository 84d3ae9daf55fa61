package models

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// Assessment is one completed questionnaire submission. Rows are immutable
// once created; there is no update path.
type Assessment struct {
	ID              uint64            `gorm:"primarykey" json:"id"`
	UserID          uint64            `gorm:"not null;index" json:"user_id"`
	Answers         map[string]string `gorm:"serializer:json;not null" json:"answers"`
	RiskScore       int               `gorm:"not null" json:"risk_score"`
	RiskLevel       RiskLevel         `gorm:"type:varchar(20);not null" json:"risk_level"`
	Recommendations string            `gorm:"type:text" json:"recommendations"`
	CreatedAt       time.Time         `gorm:"index" json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
