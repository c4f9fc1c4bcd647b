package repository

import (
	"context"
	"errors"
	"time"

	"bonehealth-backend/internal/database"
	"bonehealth-backend/internal/models"

	"gorm.io/gorm"
)

type translationRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTranslationRepository(db *database.Database) TranslationRepository {
	return &translationRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *translationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *translationRepository) Ping(ctx context.Context) error {
	if err := r.db.HealthCheck(ctx); err != nil {
		return storeError("ping", err)
	}
	return nil
}

func (r *translationRepository) CreateKey(ctx context.Context, key *models.TranslationKey) error {
	if err := validateKeyName(key.KeyName); err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicateKey
		}
		return storeError("create translation key", err)
	}
	return nil
}

func (r *translationRepository) UpdateKey(ctx context.Context, id uint, patch models.TranslationKeyPatch) (*models.TranslationKey, error) {
	if patch.KeyName != nil {
		if err := validateKeyName(*patch.KeyName); err != nil {
			return nil, err
		}
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var key models.TranslationKey
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&key, id).Error; err != nil {
			return err
		}
		applyKeyPatch(&key, patch)
		return tx.Save(&key).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case isDuplicate(err):
			return nil, ErrDuplicateKey
		}
		return nil, storeError("update translation key", err)
	}
	return &key, nil
}

// DeleteKey removes the key and every translation it owns in one transaction.
func (r *translationRepository) DeleteKey(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key_id = ?", id).Delete(&models.Translation{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.TranslationKey{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, storeError("delete translation key", err)
	}
	return deleted, nil
}

func (r *translationRepository) FindKeyByID(ctx context.Context, id uint) (*models.TranslationKey, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var key models.TranslationKey
	err := r.db.WithContext(ctx).First(&key, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("find translation key", err)
	}
	return &key, nil
}

func (r *translationRepository) FindKeyByName(ctx context.Context, keyName string) (*models.TranslationKey, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var key models.TranslationKey
	err := r.db.WithContext(ctx).Where("key_name = ?", keyName).First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("find translation key", err)
	}
	return &key, nil
}

func (r *translationRepository) ListKeys(ctx context.Context, category string) ([]models.TranslationKey, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.TranslationKey{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	keys := make([]models.TranslationKey, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&keys).Error; err != nil {
		return nil, storeError("list translation keys", err)
	}
	return keys, nil
}

func (r *translationRepository) UpsertTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	if err := validateLanguage(in.LanguageCode); err != nil {
		return nil, err
	}
	if err := validateStatus(in.Status); err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.Translation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var key models.TranslationKey
		if err := tx.Select("id").First(&key, in.KeyID).Error; err != nil {
			return err
		}

		err := tx.Where("key_id = ? AND language_code = ?", in.KeyID, in.LanguageCode).First(&translation).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			translation = newTranslation(in)
			return tx.Create(&translation).Error
		case err != nil:
			return err
		}

		applyInput(&translation, in)
		return tx.Save(&translation).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if isDuplicate(err) {
			return nil, ErrDuplicateTranslation
		}
		return nil, storeError("upsert translation", err)
	}
	return &translation, nil
}

func (r *translationRepository) UpdateTranslation(ctx context.Context, id uint, patch models.TranslationPatch) (*models.Translation, error) {
	if patch.LanguageCode != nil {
		if err := validateLanguage(*patch.LanguageCode); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.Translation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&translation, id).Error; err != nil {
			return err
		}
		applyTranslationPatch(&translation, patch)
		return tx.Save(&translation).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case isDuplicate(err):
			return nil, ErrDuplicateTranslation
		}
		return nil, storeError("update translation", err)
	}
	return &translation, nil
}

func (r *translationRepository) DeleteTranslation(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&models.Translation{}, id)
	if res.Error != nil {
		return false, storeError("delete translation", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *translationRepository) FindTranslation(ctx context.Context, keyID uint, languageCode string) (*models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var translation models.Translation
	err := r.db.WithContext(ctx).
		Where("key_id = ? AND language_code = ?", keyID, languageCode).
		First(&translation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("find translation", err)
	}
	return &translation, nil
}

func (r *translationRepository) ListTranslations(ctx context.Context, keyID uint, languageCode string) ([]models.Translation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Translation{})
	if keyID > 0 {
		query = query.Where("key_id = ?", keyID)
	}
	if languageCode != "" {
		query = query.Where("language_code = ?", languageCode)
	}
	if keyID == 0 && languageCode == "" {
		query = query.Order("updated_at DESC, id DESC")
	} else {
		query = query.Order("id ASC")
	}

	translations := make([]models.Translation, 0)
	if err := query.Find(&translations).Error; err != nil {
		return nil, storeError("list translations", err)
	}
	return translations, nil
}

func (r *translationRepository) Export(ctx context.Context, languageCode string) ([]models.TranslationRow, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Translation{}).
		Select("translation_keys.key_name, translation_keys.source_text, translations.translated_text, " +
			"translations.language_code, translations.status, translation_keys.category, translation_keys.context, " +
			"translations.key_id").
		Joins("INNER JOIN translation_keys ON translations.key_id = translation_keys.id")

	if languageCode != "" {
		query = query.Where("translations.language_code = ?", languageCode)
	}

	rows := make([]models.TranslationRow, 0)
	if err := query.Order("translations.key_id ASC, translations.language_code ASC").Scan(&rows).Error; err != nil {
		return nil, storeError("export translations", err)
	}
	return rows, nil
}

func applyKeyPatch(key *models.TranslationKey, patch models.TranslationKeyPatch) {
	if patch.KeyName != nil {
		key.KeyName = *patch.KeyName
	}
	if patch.SourceText != nil {
		key.SourceText = *patch.SourceText
	}
	if patch.Category != nil {
		key.Category = *patch.Category
	}
	if patch.Context != nil {
		key.Context = patch.Context
	}
}

func applyTranslationPatch(t *models.Translation, patch models.TranslationPatch) {
	if patch.LanguageCode != nil {
		t.LanguageCode = *patch.LanguageCode
	}
	if patch.TranslatedText != nil {
		t.TranslatedText = *patch.TranslatedText
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.TranslatorNotes != nil {
		t.TranslatorNotes = patch.TranslatorNotes
	}
	if patch.ReviewerNotes != nil {
		t.ReviewerNotes = patch.ReviewerNotes
	}
}

func newTranslation(in models.TranslationInput) models.Translation {
	status := in.Status
	if status == "" {
		status = models.StatusPending
	}
	return models.Translation{
		KeyID:           in.KeyID,
		LanguageCode:    in.LanguageCode,
		TranslatedText:  in.TranslatedText,
		Status:          status,
		TranslatorNotes: in.TranslatorNotes,
		ReviewerNotes:   in.ReviewerNotes,
	}
}

func applyInput(t *models.Translation, in models.TranslationInput) {
	t.TranslatedText = in.TranslatedText
	if in.Status != "" {
		t.Status = in.Status
	}
	if in.TranslatorNotes != nil {
		t.TranslatorNotes = in.TranslatorNotes
	}
	if in.ReviewerNotes != nil {
		t.ReviewerNotes = in.ReviewerNotes
	}
}
