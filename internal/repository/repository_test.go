package repository

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"bonehealth-backend/internal/config"
	"bonehealth-backend/internal/database"
	"bonehealth-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type storeFactory func(t *testing.T) (TranslationRepository, ProjectRepository, AssessmentRepository)

// factories returns the memory store and, when TEST_DATABASE_DSN is set, the
// postgres repositories against a freshly truncated schema.
func factories() map[string]storeFactory {
	out := map[string]storeFactory{
		"memory": func(t *testing.T) (TranslationRepository, ProjectRepository, AssessmentRepository) {
			s := NewMemoryStore()
			var tick int64
			s.now = func() time.Time {
				tick++
				return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
			}
			return s, s, s
		},
	}

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		return out
	}
	out["postgres"] = func(t *testing.T) (TranslationRepository, ProjectRepository, AssessmentRepository) {
		cfg := config.DatabaseConfig{
			MaxOpenConns:    5,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Minute,
			QueryTimeout:    5 * time.Second,
		}
		db, err := database.Open(dsn, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		require.NoError(t, db.Exec(
			"TRUNCATE translations, translation_keys, translation_projects, risk_assessments RESTART IDENTITY CASCADE",
		).Error)
		return NewTranslationRepository(db), NewProjectRepository(db), NewAssessmentRepository(db)
	}
	return out
}

func forEachStore(t *testing.T, fn func(t *testing.T, tr TranslationRepository, pr ProjectRepository, ar AssessmentRepository)) {
	for name, factory := range factories() {
		t.Run(name, func(t *testing.T) {
			tr, pr, ar := factory(t)
			fn(t, tr, pr, ar)
		})
	}
}

func strPtr(s string) *string { return &s }

func mustKey(t *testing.T, repo TranslationRepository, name, category string) *models.TranslationKey {
	t.Helper()
	key := &models.TranslationKey{KeyName: name, SourceText: "source " + name, Category: category}
	require.NoError(t, repo.CreateKey(context.Background(), key))
	require.NotZero(t, key.ID)
	return key
}

func TestTranslationKeys(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo TranslationRepository, _ ProjectRepository, _ AssessmentRepository) {
		ctx := context.Background()
		first := mustKey(t, repo, "nav.home", "navigation")
		second := mustKey(t, repo, "hero.title", "content")

		t.Run("duplicate name", func(t *testing.T) {
			err := repo.CreateKey(ctx, &models.TranslationKey{KeyName: "nav.home", SourceText: "x", Category: "navigation"})
			assert.ErrorIs(t, err, ErrDuplicateKey)
		})

		t.Run("blank name", func(t *testing.T) {
			err := repo.CreateKey(ctx, &models.TranslationKey{KeyName: "  ", SourceText: "x", Category: "c"})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "keyName", verr.Field)
		})

		t.Run("list newest first with category filter", func(t *testing.T) {
			all, err := repo.ListKeys(ctx, "")
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, second.ID, all[0].ID)
			assert.Equal(t, first.ID, all[1].ID)

			nav, err := repo.ListKeys(ctx, "navigation")
			require.NoError(t, err)
			require.Len(t, nav, 1)
			assert.Equal(t, "nav.home", nav[0].KeyName)

			none, err := repo.ListKeys(ctx, "missing")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})

		t.Run("find", func(t *testing.T) {
			byName, err := repo.FindKeyByName(ctx, "hero.title")
			require.NoError(t, err)
			require.NotNil(t, byName)
			assert.Equal(t, second.ID, byName.ID)

			missing, err := repo.FindKeyByID(ctx, 9999)
			assert.NoError(t, err)
			assert.Nil(t, missing)
		})

		t.Run("partial update", func(t *testing.T) {
			updated, err := repo.UpdateKey(ctx, first.ID, models.TranslationKeyPatch{SourceText: strPtr("Home")})
			require.NoError(t, err)
			assert.Equal(t, "Home", updated.SourceText)
			assert.Equal(t, "nav.home", updated.KeyName)
			assert.Equal(t, "navigation", updated.Category)

			_, err = repo.UpdateKey(ctx, first.ID, models.TranslationKeyPatch{KeyName: strPtr("hero.title")})
			assert.ErrorIs(t, err, ErrDuplicateKey)

			_, err = repo.UpdateKey(ctx, 9999, models.TranslationKeyPatch{SourceText: strPtr("x")})
			assert.ErrorIs(t, err, ErrNotFound)
		})
	})
}

func TestTranslations(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo TranslationRepository, _ ProjectRepository, _ AssessmentRepository) {
		ctx := context.Background()
		key := mustKey(t, repo, "hero.title", "content")
		other := mustKey(t, repo, "nav.home", "navigation")

		t.Run("upsert creates then updates in place", func(t *testing.T) {
			created, err := repo.UpsertTranslation(ctx, models.TranslationInput{
				KeyID: key.ID, LanguageCode: "hi", TranslatedText: "पहला",
			})
			require.NoError(t, err)
			assert.Equal(t, models.StatusPending, created.Status)

			updated, err := repo.UpsertTranslation(ctx, models.TranslationInput{
				KeyID: key.ID, LanguageCode: "hi", TranslatedText: "दूसरा", Status: models.StatusApproved,
			})
			require.NoError(t, err)
			assert.Equal(t, created.ID, updated.ID)
			assert.Equal(t, "दूसरा", updated.TranslatedText)
			assert.Equal(t, models.StatusApproved, updated.Status)

			kept, err := repo.UpsertTranslation(ctx, models.TranslationInput{
				KeyID: key.ID, LanguageCode: "hi", TranslatedText: "तीसरा",
			})
			require.NoError(t, err)
			assert.Equal(t, models.StatusApproved, kept.Status)

			list, err := repo.ListTranslations(ctx, key.ID, "hi")
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})

		t.Run("upsert rejects unknown key, language and status", func(t *testing.T) {
			_, err := repo.UpsertTranslation(ctx, models.TranslationInput{KeyID: 9999, LanguageCode: "hi", TranslatedText: "x"})
			assert.ErrorIs(t, err, ErrNotFound)

			var verr *ValidationError
			_, err = repo.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "fr", TranslatedText: "x"})
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "languageCode", verr.Field)

			_, err = repo.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "en", TranslatedText: "x", Status: "done"})
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "status", verr.Field)
		})

		t.Run("update cannot collide on language", func(t *testing.T) {
			en, err := repo.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "en", TranslatedText: "x"})
			require.NoError(t, err)

			_, err = repo.UpdateTranslation(ctx, en.ID, models.TranslationPatch{LanguageCode: strPtr("hi")})
			assert.ErrorIs(t, err, ErrDuplicateTranslation)

			notes, err := repo.UpdateTranslation(ctx, en.ID, models.TranslationPatch{ReviewerNotes: strPtr("check tone")})
			require.NoError(t, err)
			require.NotNil(t, notes.ReviewerNotes)
			assert.Equal(t, "check tone", *notes.ReviewerNotes)
			assert.Equal(t, "x", notes.TranslatedText)

			_, err = repo.UpdateTranslation(ctx, 9999, models.TranslationPatch{TranslatedText: strPtr("x")})
			assert.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("export is joined and ordered", func(t *testing.T) {
			_, err := repo.UpsertTranslation(ctx, models.TranslationInput{KeyID: other.ID, LanguageCode: "hi", TranslatedText: "होम"})
			require.NoError(t, err)

			rows, err := repo.Export(ctx, "")
			require.NoError(t, err)
			require.Len(t, rows, 3)
			assert.Equal(t, []string{"hero.title", "hero.title", "nav.home"},
				[]string{rows[0].KeyName, rows[1].KeyName, rows[2].KeyName})
			assert.Equal(t, []string{"en", "hi", "hi"},
				[]string{rows[0].LanguageCode, rows[1].LanguageCode, rows[2].LanguageCode})
			assert.Equal(t, "source nav.home", rows[2].SourceText)
			assert.Equal(t, "navigation", rows[2].Category)

			hi, err := repo.Export(ctx, "hi")
			require.NoError(t, err)
			assert.Len(t, hi, 2)
		})

		t.Run("deleting a key cascades", func(t *testing.T) {
			deleted, err := repo.DeleteKey(ctx, key.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			left, err := repo.ListTranslations(ctx, key.ID, "")
			require.NoError(t, err)
			assert.Empty(t, left)

			found, err := repo.FindTranslation(ctx, key.ID, "hi")
			require.NoError(t, err)
			assert.Nil(t, found)

			again, err := repo.DeleteKey(ctx, key.ID)
			require.NoError(t, err)
			assert.False(t, again)

			rows, err := repo.Export(ctx, "")
			require.NoError(t, err)
			assert.Len(t, rows, 1)

			empty, err := repo.Export(ctx, "en")
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)
		})
	})
}

func TestProjectsAndAssessments(t *testing.T) {
	forEachStore(t, func(t *testing.T, _ TranslationRepository, projects ProjectRepository, assessments AssessmentRepository) {
		ctx := context.Background()

		p := &models.TranslationProject{Name: "Hindi launch"}
		require.NoError(t, projects.CreateProject(ctx, p))
		assert.Equal(t, models.ProjectActive, p.Status)

		updated, err := projects.UpdateProject(ctx, p.ID, models.TranslationProjectPatch{Status: strPtr(models.ProjectCompleted)})
		require.NoError(t, err)
		assert.Equal(t, "Hindi launch", updated.Name)
		assert.Equal(t, models.ProjectCompleted, updated.Status)

		_, err = projects.UpdateProject(ctx, p.ID, models.TranslationProjectPatch{Status: strPtr("paused")})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)

		_, err = projects.UpdateProject(ctx, 9999, models.TranslationProjectPatch{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)

		base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		for i, score := range []int{4, 12} {
			require.NoError(t, assessments.CreateAssessment(ctx, &models.RiskAssessment{
				SessionID:       "session-1",
				Language:        "en",
				Responses:       datatypes.JSON(`{"age":"under40"}`),
				RiskScore:       score,
				RiskLevel:       "moderate",
				Recommendations: datatypes.JSON(`[]`),
				CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			}))
		}

		latest, err := assessments.FindLatestBySession(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, 12, latest.RiskScore)

		missing, err := assessments.FindLatestBySession(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError("op", nil))

	err := storeError("list", context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	err = storeError("list", fmt.Errorf("dial: %w", timeoutError{}))
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	plain := fmt.Errorf("syntax error")
	err = storeError("list", plain)
	assert.ErrorIs(t, err, plain)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "list: syntax error")
}
