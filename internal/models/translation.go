package models

import (
	"time"
)

// Translation review statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// DefaultImportCategory is assigned to keys created by an import row without a category.
const DefaultImportCategory = "imported"

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type TranslationKey struct {
	ID           uint          `gorm:"primaryKey" json:"id" example:"1"`
	KeyName      string        `gorm:"uniqueIndex;not null" json:"keyName" example:"hero.title"`
	SourceText   string        `gorm:"type:text;not null" json:"sourceText" example:"Strong bones for life"`
	Category     string        `gorm:"index;not null" json:"category" example:"content"`
	Context      *string       `gorm:"type:text" json:"context"`
	Translations []Translation `gorm:"foreignKey:KeyID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (TranslationKey) TableName() string {
	return "translation_keys"
}

type Translation struct {
	ID              uint      `gorm:"primaryKey" json:"id" example:"1"`
	KeyID           uint      `gorm:"not null;uniqueIndex:idx_translation_key_language" json:"keyId" example:"1"`
	LanguageCode    string    `gorm:"not null;size:10;index;uniqueIndex:idx_translation_key_language" json:"languageCode" example:"hi"`
	TranslatedText  string    `gorm:"type:text;not null" json:"translatedText" example:"जीवन भर मजबूत हड्डियाँ"`
	Status          string    `gorm:"not null;default:pending;index" json:"status" example:"pending"`
	TranslatorNotes *string   `gorm:"type:text" json:"translatorNotes"`
	ReviewerNotes   *string   `gorm:"type:text" json:"reviewerNotes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `gorm:"index" json:"updatedAt"`
}

func (Translation) TableName() string {
	return "translations"
}

// TranslationKeyPatch carries a partial key update; nil fields are left unchanged.
type TranslationKeyPatch struct {
	KeyName    *string
	SourceText *string
	Category   *string
	Context    *string
}

// TranslationPatch carries a partial translation update; nil fields are left unchanged.
type TranslationPatch struct {
	LanguageCode    *string
	TranslatedText  *string
	Status          *string
	TranslatorNotes *string
	ReviewerNotes   *string
}

// TranslationRow is one Translation joined with its owning TranslationKey.
// The same shape is accepted by the import pipeline.
type TranslationRow struct {
	KeyName        string  `json:"keyName" example:"hero.title"`
	SourceText     string  `json:"sourceText" example:"Strong bones for life"`
	TranslatedText string  `json:"translatedText" example:"जीवन भर मजबूत हड्डियाँ"`
	LanguageCode   string  `json:"languageCode" example:"hi"`
	Status         string  `json:"status" example:"approved"`
	Category       string  `json:"category" example:"content"`
	Context        *string `json:"context"`
	KeyID          uint    `json:"-"`
}

// ImportResult reports a partial-failure-tolerant import batch.
type ImportResult struct {
	Success int      `json:"success" example:"4"`
	Errors  []string `json:"errors"`
}

// TranslationInput is the payload for an upsert keyed by (KeyID, LanguageCode).
// An empty Status means pending on create and unchanged on update.
type TranslationInput struct {
	KeyID           uint
	LanguageCode    string
	TranslatedText  string
	Status          string
	TranslatorNotes *string
	ReviewerNotes   *string
}
