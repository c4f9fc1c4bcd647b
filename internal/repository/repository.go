package repository

import (
	"context"

	"bonehealth-backend/internal/models"
)

// TranslationRepository persists translation keys and their per-language translations.
// Lookups that find nothing return (nil, nil); mutations of unknown ids return ErrNotFound.
type TranslationRepository interface {
	// Keys
	CreateKey(ctx context.Context, key *models.TranslationKey) error
	UpdateKey(ctx context.Context, id uint, patch models.TranslationKeyPatch) (*models.TranslationKey, error)
	DeleteKey(ctx context.Context, id uint) (bool, error)
	FindKeyByID(ctx context.Context, id uint) (*models.TranslationKey, error)
	FindKeyByName(ctx context.Context, keyName string) (*models.TranslationKey, error)
	ListKeys(ctx context.Context, category string) ([]models.TranslationKey, error)

	// Translations
	UpsertTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error)
	UpdateTranslation(ctx context.Context, id uint, patch models.TranslationPatch) (*models.Translation, error)
	DeleteTranslation(ctx context.Context, id uint) (bool, error)
	FindTranslation(ctx context.Context, keyID uint, languageCode string) (*models.Translation, error)
	ListTranslations(ctx context.Context, keyID uint, languageCode string) ([]models.Translation, error)

	// Export joins translations with their keys, ordered by key id then language code.
	Export(ctx context.Context, languageCode string) ([]models.TranslationRow, error)

	Ping(ctx context.Context) error
}

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]models.TranslationProject, error)
	CreateProject(ctx context.Context, project *models.TranslationProject) error
	UpdateProject(ctx context.Context, id uint, patch models.TranslationProjectPatch) (*models.TranslationProject, error)
}

type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment *models.RiskAssessment) error
	FindLatestBySession(ctx context.Context, sessionID string) (*models.RiskAssessment, error)
}
