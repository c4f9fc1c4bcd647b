package models

import "time"

// Project statuses.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectArchived  = "archived"
)

func IsValidProjectStatus(status string) bool {
	switch status {
	case ProjectActive, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}

type TranslationProject struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name        string    `gorm:"not null" json:"name" example:"Hindi launch"`
	Description *string   `gorm:"type:text" json:"description"`
	Status      string    `gorm:"not null;default:active;index" json:"status" example:"active"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (TranslationProject) TableName() string {
	return "translation_projects"
}

type TranslationProjectPatch struct {
	Name        *string
	Description *string
	Status      *string
}
