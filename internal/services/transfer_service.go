package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"
	"bonehealth-backend/internal/transfer"

	"github.com/sirupsen/logrus"
)

type TransferService interface {
	// Import applies each row as its own unit of work. Row failures are
	// collected into the result and never abort the batch.
	Import(ctx context.Context, rows []models.TranslationRow) models.ImportResult
	// ImportJSON is Import over undecoded rows; a row that does not decode
	// fails on its own.
	ImportJSON(ctx context.Context, items []json.RawMessage) models.ImportResult
	// ImportCSV validates the CSV header before any row is imported.
	ImportCSV(ctx context.Context, text string) (models.ImportResult, error)
	Export(ctx context.Context, languageCode string) ([]models.TranslationRow, error)
}

type transferService struct {
	repo     repository.TranslationRepository
	catalogs *CatalogService
	logger   *logrus.Logger
}

func NewTransferService(repo repository.TranslationRepository, catalogs *CatalogService, logger *logrus.Logger) TransferService {
	return &transferService{
		repo:     repo,
		catalogs: catalogs,
		logger:   logger,
	}
}

// importRow is one row of an import batch. Nil text fields were absent.
type importRow struct {
	KeyName        string  `json:"keyName"`
	SourceText     *string `json:"sourceText"`
	TranslatedText *string `json:"translatedText"`
	LanguageCode   string  `json:"languageCode"`
	Status         string  `json:"status"`
	Category       string  `json:"category"`
	Context        *string `json:"context"`
}

func fromTranslationRow(row models.TranslationRow) importRow {
	return importRow{
		KeyName:        row.KeyName,
		SourceText:     &row.SourceText,
		TranslatedText: &row.TranslatedText,
		LanguageCode:   row.LanguageCode,
		Status:         row.Status,
		Category:       row.Category,
		Context:        row.Context,
	}
}

// decodeRow keeps whatever fields decoded so the error can name the key.
func decodeRow(raw json.RawMessage) (importRow, error) {
	var row importRow
	err := json.Unmarshal(raw, &row)
	if err == nil {
		return row, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return row, &repository.ValidationError{Field: "row", Message: "must be an object, got " + typeErr.Value}
		}
		return row, &repository.ValidationError{Field: typeErr.Field, Message: fmt.Sprintf("must be %s, got %s", typeErr.Type, typeErr.Value)}
	}
	return row, &repository.ValidationError{Field: "row", Message: err.Error()}
}

func (r importRow) label(i int) string {
	if strings.TrimSpace(r.KeyName) == "" {
		return fmt.Sprintf("row %d", i+1)
	}
	return r.KeyName
}

func (s *transferService) Import(ctx context.Context, rows []models.TranslationRow) models.ImportResult {
	return s.importAll(ctx, len(rows), func(i int) (importRow, error) {
		return fromTranslationRow(rows[i]), nil
	})
}

func (s *transferService) ImportJSON(ctx context.Context, items []json.RawMessage) models.ImportResult {
	return s.importAll(ctx, len(items), func(i int) (importRow, error) {
		return decodeRow(items[i])
	})
}

func (s *transferService) importAll(ctx context.Context, n int, next func(i int) (importRow, error)) models.ImportResult {
	start := time.Now()
	result := models.ImportResult{Errors: []string{}}

	for i := 0; i < n; i++ {
		row, err := next(i)
		if err == nil {
			err = s.apply(ctx, row)
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %s: %s", row.label(i), err.Error()))
			continue
		}
		result.Success++
	}

	s.logger.WithFields(logrus.Fields{
		"rows":     n,
		"success":  result.Success,
		"failed":   len(result.Errors),
		"duration": time.Since(start).String(),
	}).Info("Translation import finished")

	if result.Success > 0 && s.catalogs != nil {
		s.catalogs.refresh(ctx)
	}
	return result
}

func (s *transferService) apply(ctx context.Context, row importRow) error {
	if err := validateRow(row); err != nil {
		return err
	}

	key, err := s.repo.FindKeyByName(ctx, row.KeyName)
	if err != nil {
		return err
	}
	if key == nil {
		key, err = s.createImportedKey(ctx, row)
		if err != nil {
			return err
		}
	}

	status := row.Status
	if status == "" {
		status = models.StatusPending
	}
	_, err = s.repo.UpsertTranslation(ctx, models.TranslationInput{
		KeyID:          key.ID,
		LanguageCode:   row.LanguageCode,
		TranslatedText: *row.TranslatedText,
		Status:         status,
	})
	return err
}

func (s *transferService) createImportedKey(ctx context.Context, row importRow) (*models.TranslationKey, error) {
	if row.SourceText == nil {
		return nil, &repository.ValidationError{Field: "sourceText", Message: "is required for a new key"}
	}

	category := row.Category
	if category == "" {
		category = models.DefaultImportCategory
	}
	key := &models.TranslationKey{
		KeyName:    row.KeyName,
		SourceText: *row.SourceText,
		Category:   category,
		Context:    row.Context,
	}

	err := s.repo.CreateKey(ctx, key)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// Created concurrently; use the winner.
		existing, findErr := s.repo.FindKeyByName(ctx, row.KeyName)
		if findErr != nil {
			return nil, findErr
		}
		if existing != nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

func validateRow(row importRow) error {
	if strings.TrimSpace(row.KeyName) == "" {
		return &repository.ValidationError{Field: "keyName", Message: "is required"}
	}
	if row.TranslatedText == nil {
		return &repository.ValidationError{Field: "translatedText", Message: "is required"}
	}
	if !models.IsSupportedLanguage(row.LanguageCode) {
		return &repository.ValidationError{Field: "languageCode", Message: fmt.Sprintf("unsupported language code %q", row.LanguageCode)}
	}
	if row.Status != "" && !models.IsValidStatus(row.Status) {
		return &repository.ValidationError{Field: "status", Message: fmt.Sprintf("must be one of pending, approved, rejected; got %q", row.Status)}
	}
	return nil
}

func (s *transferService) ImportCSV(ctx context.Context, text string) (models.ImportResult, error) {
	rows, err := transfer.ParseCSV(text)
	if err != nil {
		s.logger.WithError(err).Warn("Rejected CSV import")
		return models.ImportResult{}, err
	}
	return s.Import(ctx, rows), nil
}

func (s *transferService) Export(ctx context.Context, languageCode string) ([]models.TranslationRow, error) {
	if languageCode != "" && !models.IsSupportedLanguage(languageCode) {
		return nil, &repository.ValidationError{Field: "languageCode", Message: fmt.Sprintf("unsupported language code %q", languageCode)}
	}

	rows, err := s.repo.Export(ctx, languageCode)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.TranslationRow{}
	}
	return rows, nil
}
