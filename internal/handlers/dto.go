package handlers

import (
	"encoding/json"

	"bonehealth-backend/internal/assessment"
	"bonehealth-backend/internal/models"
)

type CreateTranslationKeyRequest struct {
	KeyName    string  `json:"keyName" validate:"required,max=255" example:"hero.title"`
	SourceText string  `json:"sourceText" validate:"required" example:"Strong bones for life"`
	Category   string  `json:"category" validate:"required,max=100" example:"content"`
	Context    *string `json:"context" example:"Homepage hero heading"`
}

type UpdateTranslationKeyRequest struct {
	KeyName    *string `json:"keyName" validate:"omitempty,min=1,max=255" example:"hero.title"`
	SourceText *string `json:"sourceText" example:"Strong bones for life"`
	Category   *string `json:"category" validate:"omitempty,min=1,max=100" example:"content"`
	Context    *string `json:"context"`
}

func (r UpdateTranslationKeyRequest) patch() models.TranslationKeyPatch {
	return models.TranslationKeyPatch{
		KeyName:    r.KeyName,
		SourceText: r.SourceText,
		Category:   r.Category,
		Context:    r.Context,
	}
}

type UpsertTranslationRequest struct {
	KeyID           uint    `json:"keyId" validate:"required" example:"1"`
	LanguageCode    string  `json:"languageCode" validate:"required,language" example:"hi"`
	TranslatedText  *string `json:"translatedText" validate:"required" example:"जीवन भर मजबूत हड्डियाँ"`
	Status          string  `json:"status" validate:"omitempty,review_status" example:"pending"`
	TranslatorNotes *string `json:"translatorNotes"`
	ReviewerNotes   *string `json:"reviewerNotes"`
}

func (r UpsertTranslationRequest) input() models.TranslationInput {
	return models.TranslationInput{
		KeyID:           r.KeyID,
		LanguageCode:    r.LanguageCode,
		TranslatedText:  *r.TranslatedText,
		Status:          r.Status,
		TranslatorNotes: r.TranslatorNotes,
		ReviewerNotes:   r.ReviewerNotes,
	}
}

type UpdateTranslationRequest struct {
	LanguageCode    *string `json:"languageCode" validate:"omitempty,language" example:"hi"`
	TranslatedText  *string `json:"translatedText"`
	Status          *string `json:"status" validate:"omitempty,review_status" example:"approved"`
	TranslatorNotes *string `json:"translatorNotes"`
	ReviewerNotes   *string `json:"reviewerNotes"`
}

func (r UpdateTranslationRequest) patch() models.TranslationPatch {
	return models.TranslationPatch{
		LanguageCode:    r.LanguageCode,
		TranslatedText:  r.TranslatedText,
		Status:          r.Status,
		TranslatorNotes: r.TranslatorNotes,
		ReviewerNotes:   r.ReviewerNotes,
	}
}

// ImportRequest carries rows undecoded so that one malformed row fails alone.
type ImportRequest struct {
	Data []json.RawMessage `json:"data" swaggertype:"array,object"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required,max=255" example:"Hindi launch"`
	Description *string `json:"description" example:"All patient-facing copy in Hindi"`
	Status      string  `json:"status" validate:"omitempty,project_status" example:"active"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255" example:"Hindi launch"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,project_status" example:"completed"`
}

func (r UpdateProjectRequest) patch() models.TranslationProjectPatch {
	return models.TranslationProjectPatch{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
	}
}

// RiskAssessmentRequest is a questionnaire submission. Any riskScore or
// recommendations sent by the client are ignored and recomputed.
type RiskAssessmentRequest struct {
	SessionID string          `json:"sessionId" validate:"max=128" example:"3f2a9c1e-7a51-4d0e-9b7e-0c1d2e3f4a5b"`
	Language  string          `json:"language" validate:"omitempty,language" example:"en"`
	Responses json.RawMessage `json:"responses" swaggertype:"object"`
}

type ScoreRequest struct {
	Responses assessment.Responses `json:"responses" swaggertype:"object"`
}
