package models

import (
	"time"

	"gorm.io/datatypes"
)

// RiskAssessment is one persisted questionnaire submission. Records are never mutated.
type RiskAssessment struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	SessionID       string         `gorm:"index;not null" json:"sessionId" example:"3f2a9c1e"`
	Language        string         `gorm:"size:10" json:"language" example:"en"`
	Responses       datatypes.JSON `gorm:"type:jsonb;not null" json:"responses" swaggertype:"object"`
	RiskScore       int            `gorm:"not null" json:"riskScore" example:"14"`
	RiskLevel       string         `gorm:"size:16" json:"riskLevel" example:"high"`
	Recommendations datatypes.JSON `gorm:"type:jsonb;not null" json:"recommendations" swaggertype:"array,string"`
	CreatedAt       time.Time      `gorm:"index" json:"createdAt"`
}

func (RiskAssessment) TableName() string {
	return "risk_assessments"
}
