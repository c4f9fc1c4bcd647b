package services

import (
	"context"
	"fmt"
	"strings"

	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type TranslationService interface {
	// Keys
	ListKeys(ctx context.Context, category string) ([]models.TranslationKey, error)
	GetKey(ctx context.Context, id uint) (*models.TranslationKey, error)
	CreateKey(ctx context.Context, key *models.TranslationKey) error
	UpdateKey(ctx context.Context, id uint, patch models.TranslationKeyPatch) (*models.TranslationKey, error)
	DeleteKey(ctx context.Context, id uint) (bool, error)

	// Translations
	ListTranslations(ctx context.Context, keyID uint, languageCode string) ([]models.Translation, error)
	UpsertTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error)
	UpdateTranslation(ctx context.Context, id uint, patch models.TranslationPatch) (*models.Translation, error)
	DeleteTranslation(ctx context.Context, id uint) (bool, error)
}

type translationService struct {
	repo     repository.TranslationRepository
	catalogs *CatalogService
	logger   *logrus.Logger
}

// NewTranslationService wires the store. catalogs may be nil, in which case
// mutations do not refresh the resolver.
func NewTranslationService(repo repository.TranslationRepository, catalogs *CatalogService, logger *logrus.Logger) TranslationService {
	return &translationService{
		repo:     repo,
		catalogs: catalogs,
		logger:   logger,
	}
}

func (s *translationService) changed(ctx context.Context) {
	if s.catalogs != nil {
		s.catalogs.refresh(ctx)
	}
}

func (s *translationService) ListKeys(ctx context.Context, category string) ([]models.TranslationKey, error) {
	return s.repo.ListKeys(ctx, strings.TrimSpace(category))
}

func (s *translationService) GetKey(ctx context.Context, id uint) (*models.TranslationKey, error) {
	key, err := s.repo.FindKeyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, repository.ErrNotFound
	}
	return key, nil
}

func (s *translationService) CreateKey(ctx context.Context, key *models.TranslationKey) error {
	key.KeyName = strings.TrimSpace(key.KeyName)
	if key.Category == "" {
		return &repository.ValidationError{Field: "category", Message: "is required"}
	}

	if err := s.repo.CreateKey(ctx, key); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"id":      key.ID,
		"keyName": key.KeyName,
	}).Info("Translation key created")
	s.changed(ctx)
	return nil
}

func (s *translationService) UpdateKey(ctx context.Context, id uint, patch models.TranslationKeyPatch) (*models.TranslationKey, error) {
	if patch.KeyName != nil {
		trimmed := strings.TrimSpace(*patch.KeyName)
		patch.KeyName = &trimmed
	}
	if patch.Category != nil && *patch.Category == "" {
		return nil, &repository.ValidationError{Field: "category", Message: "must not be empty"}
	}

	key, err := s.repo.UpdateKey(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.changed(ctx)
	return key, nil
}

func (s *translationService) DeleteKey(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.DeleteKey(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.WithField("id", id).Info("Translation key deleted with its translations")
		s.changed(ctx)
	}
	return deleted, nil
}

func (s *translationService) ListTranslations(ctx context.Context, keyID uint, languageCode string) ([]models.Translation, error) {
	if languageCode != "" && !models.IsSupportedLanguage(languageCode) {
		return nil, &repository.ValidationError{Field: "languageCode", Message: fmt.Sprintf("unsupported language code %q", languageCode)}
	}
	return s.repo.ListTranslations(ctx, keyID, languageCode)
}

func (s *translationService) UpsertTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	if in.KeyID == 0 {
		return nil, &repository.ValidationError{Field: "keyId", Message: "is required"}
	}

	t, err := s.repo.UpsertTranslation(ctx, in)
	if err != nil {
		return nil, err
	}
	s.changed(ctx)
	return t, nil
}

func (s *translationService) UpdateTranslation(ctx context.Context, id uint, patch models.TranslationPatch) (*models.Translation, error) {
	t, err := s.repo.UpdateTranslation(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.changed(ctx)
	return t, nil
}

func (s *translationService) DeleteTranslation(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.DeleteTranslation(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.changed(ctx)
	}
	return deleted, nil
}
