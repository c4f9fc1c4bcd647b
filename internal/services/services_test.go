package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"bonehealth-backend/internal/assessment"
	"bonehealth-backend/internal/i18n"
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"
	"bonehealth-backend/internal/transfer"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store        *repository.MemoryStore
	resolver     *i18n.Resolver
	catalogs     *CatalogService
	translations TranslationService
	transfers    TransferService
	assessments  AssessmentService
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := testLogger()
	store := repository.NewMemoryStore()
	resolver := i18n.NewResolver(models.DefaultLanguage)
	catalogs := NewCatalogService(store, resolver, nil, logger)
	require.NoError(t, catalogs.Rebuild(context.Background()))

	return &fixture{
		store:        store,
		resolver:     resolver,
		catalogs:     catalogs,
		translations: NewTranslationService(store, catalogs, logger),
		transfers:    NewTransferService(store, catalogs, logger),
		assessments:  NewAssessmentService(store, resolver, logger),
	}
}

func (f *fixture) createKey(t *testing.T, name, source string) *models.TranslationKey {
	t.Helper()
	key := &models.TranslationKey{KeyName: name, SourceText: source, Category: "content"}
	require.NoError(t, f.translations.CreateKey(context.Background(), key))
	return key
}

func (f *fixture) keyByName(t *testing.T, name string) *models.TranslationKey {
	t.Helper()
	key, err := f.store.FindKeyByName(context.Background(), name)
	require.NoError(t, err)
	return key
}

func (f *fixture) translation(t *testing.T, keyID uint, lang string) *models.Translation {
	t.Helper()
	tr, err := f.store.FindTranslation(context.Background(), keyID, lang)
	require.NoError(t, err)
	return tr
}

func strPtr(s string) *string { return &s }

func TestTranslationService_CreateKeyDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.createKey(t, "hero.title", "Strong bones")
	err := f.translations.CreateKey(ctx, &models.TranslationKey{KeyName: "hero.title", SourceText: "again", Category: "content"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	var vErr *repository.ValidationError
	err = f.translations.CreateKey(ctx, &models.TranslationKey{KeyName: "  ", SourceText: "x", Category: "ui"})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "keyName", vErr.Field)
}

func TestTranslationService_UpsertIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := f.createKey(t, "nav.home", "Home")

	first, err := f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "hi", TranslatedText: "घर"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, first.Status)

	second, err := f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "hi", TranslatedText: "होम"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	list, err := f.translations.ListTranslations(ctx, key.ID, "hi")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "होम", list[0].TranslatedText)

	_, err = f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: 999, LanguageCode: "hi", TranslatedText: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTranslationService_DeleteKeyCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := f.createKey(t, "hero.title", "Strong bones")
	other := f.createKey(t, "hero.subtitle", "For life")

	for _, k := range []*models.TranslationKey{key, other} {
		_, err := f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: k.ID, LanguageCode: "hi", TranslatedText: "x"})
		require.NoError(t, err)
	}

	deleted, err := f.translations.DeleteKey(ctx, key.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err := f.translations.ListTranslations(ctx, key.ID, "")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = f.translations.ListTranslations(ctx, other.ID, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err = f.translations.DeleteKey(ctx, key.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTranslationService_UpdateTranslationPairUniqueness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	key := f.createKey(t, "a", "A")

	en, err := f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "en", TranslatedText: "A"})
	require.NoError(t, err)
	_, err = f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "hi", TranslatedText: "ए"})
	require.NoError(t, err)

	_, err = f.translations.UpdateTranslation(ctx, en.ID, models.TranslationPatch{LanguageCode: strPtr("hi")})
	assert.ErrorIs(t, err, repository.ErrDuplicateTranslation)

	updated, err := f.translations.UpdateTranslation(ctx, en.ID, models.TranslationPatch{Status: strPtr(models.StatusApproved), ReviewerNotes: strPtr("ok")})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
	require.NotNil(t, updated.ReviewerNotes)

	_, err = f.translations.UpdateTranslation(ctx, 999, models.TranslationPatch{Status: strPtr(models.StatusApproved)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTranslationService_GetMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.translations.GetKey(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransferService_ImportPartialFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rows := []models.TranslationRow{
		{KeyName: "k1", SourceText: "One", TranslatedText: "एक", LanguageCode: "hi"},
		{KeyName: "k2", SourceText: "Two", TranslatedText: "दो", LanguageCode: "hi", Status: "approved"},
		{KeyName: "k3", SourceText: "Three", TranslatedText: "trois", LanguageCode: "fr"},
		{KeyName: "k4", SourceText: "Four", TranslatedText: "चार", LanguageCode: "hi"},
		{KeyName: "k5", SourceText: "Five", TranslatedText: "पाँच", LanguageCode: "hi", Category: "numbers"},
	}

	result := f.transfers.Import(ctx, rows)
	assert.Equal(t, 4, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to import k3: ")
	assert.Contains(t, result.Errors[0], "languageCode")

	for _, name := range []string{"k4", "k5"} {
		key := f.keyByName(t, name)
		require.NotNil(t, key, name)
		assert.NotNil(t, f.translation(t, key.ID, "hi"), name)
	}

	k1 := f.keyByName(t, "k1")
	require.NotNil(t, k1)
	assert.Equal(t, models.DefaultImportCategory, k1.Category)

	k5 := f.keyByName(t, "k5")
	require.NotNil(t, k5)
	assert.Equal(t, "numbers", k5.Category)

	assert.Nil(t, f.keyByName(t, "k3"))
}

func TestTransferService_ImportUpdatesExisting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.transfers.Import(ctx, []models.TranslationRow{
		{KeyName: "k", SourceText: "K", TranslatedText: "old", LanguageCode: "hi", Status: "approved"},
	})
	result := f.transfers.Import(ctx, []models.TranslationRow{
		{KeyName: "k", SourceText: "ignored", TranslatedText: "new", LanguageCode: "hi"},
	})
	assert.Equal(t, 1, result.Success)
	assert.Empty(t, result.Errors)

	key := f.keyByName(t, "k")
	require.NotNil(t, key)
	assert.Equal(t, "K", key.SourceText)

	tr := f.translation(t, key.ID, "hi")
	require.NotNil(t, tr)
	assert.Equal(t, "new", tr.TranslatedText)
	assert.Equal(t, models.StatusPending, tr.Status)
}

func TestTransferService_ImportJSONRequiredText(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createKey(t, "existing", "Existing")

	result := f.transfers.ImportJSON(ctx, []json.RawMessage{
		json.RawMessage(`{"keyName":"d","languageCode":"hi"}`),
		json.RawMessage(`{"keyName":"e","translatedText":"ई","languageCode":"hi"}`),
		json.RawMessage(`{"keyName":"existing","translatedText":"मौजूदा","languageCode":"hi"}`),
		json.RawMessage(`{"keyName":"f","sourceText":"F","translatedText":["x"],"languageCode":"hi"}`),
		json.RawMessage(`{"keyName":"g","sourceText":"","translatedText":"","languageCode":"hi"}`),
	})
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, []string{
		"Failed to import d: translatedText: is required",
		"Failed to import e: sourceText: is required for a new key",
		"Failed to import f: translatedText: must be string, got array",
	}, result.Errors)

	for _, name := range []string{"d", "e", "f"} {
		assert.Nil(t, f.keyByName(t, name), name)
	}

	existing := f.keyByName(t, "existing")
	require.NotNil(t, existing)
	assert.Equal(t, "Existing", existing.SourceText)
	tr := f.translation(t, existing.ID, "hi")
	require.NotNil(t, tr)
	assert.Equal(t, "मौजूदा", tr.TranslatedText)

	g := f.keyByName(t, "g")
	require.NotNil(t, g)
	assert.NotNil(t, f.translation(t, g.ID, "hi"))
}

func TestTransferService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newFixture(t)

	hero := src.createKey(t, "hero.title", "Strong bones")
	nav := src.createKey(t, "nav.home", "Home")
	inputs := []models.TranslationInput{
		{KeyID: hero.ID, LanguageCode: "hi", TranslatedText: "मजबूत हड्डियाँ", Status: models.StatusApproved},
		{KeyID: hero.ID, LanguageCode: "en", TranslatedText: "Strong bones", Status: models.StatusApproved},
		{KeyID: nav.ID, LanguageCode: "hi", TranslatedText: "होम", Status: models.StatusRejected},
	}
	for _, in := range inputs {
		_, err := src.translations.UpsertTranslation(ctx, in)
		require.NoError(t, err)
	}

	exported, err := src.transfers.Export(ctx, "")
	require.NoError(t, err)
	require.Len(t, exported, 3)
	assert.Equal(t, "en", exported[0].LanguageCode)
	assert.Equal(t, "hero.title", exported[0].KeyName)

	for name, rows := range map[string][]models.TranslationRow{
		"json": decodeJSONRows(t, exported),
		"csv":  decodeCSVRows(t, exported),
	} {
		t.Run(name, func(t *testing.T) {
			dst := newFixture(t)
			result := dst.transfers.Import(ctx, rows)
			assert.Equal(t, len(exported), result.Success)
			assert.Empty(t, result.Errors)

			reexported, err := dst.transfers.Export(ctx, "")
			require.NoError(t, err)
			assert.Equal(t, tuples(exported), tuples(reexported))
		})
	}
}

func decodeJSONRows(t *testing.T, rows []models.TranslationRow) []models.TranslationRow {
	data, err := json.Marshal(rows)
	require.NoError(t, err)
	var out []models.TranslationRow
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func decodeCSVRows(t *testing.T, rows []models.TranslationRow) []models.TranslationRow {
	out, err := transfer.ParseCSV(transfer.EncodeCSV(rows))
	require.NoError(t, err)
	return out
}

func tuples(rows []models.TranslationRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.KeyName+"|"+r.LanguageCode+"|"+r.TranslatedText+"|"+r.Status)
	}
	return out
}

func TestTransferService_ImportCSVHeaderError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.transfers.ImportCSV(ctx, "keyName,sourceText,translatedText,languageCode,status,category\n\"a\",\"A\",\"ए\",\"hi\",\"\",\"ui\"")
	var headerErr *transfer.CSVHeaderError
	require.True(t, errors.As(err, &headerErr))
	assert.Equal(t, []string{"context"}, headerErr.Missing)

	keys, err := f.translations.ListKeys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestTransferService_ExportRejectsUnknownLanguage(t *testing.T) {
	f := newFixture(t)
	_, err := f.transfers.Export(context.Background(), "xx")
	var vErr *repository.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestCatalogService_RebuildFollowsMutations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	key := f.createKey(t, "assessment.age", "What is your age?")
	assert.Equal(t, "What is your age?", f.resolver.Resolve("hi", "assessment.age"))

	tr, err := f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "hi", TranslatedText: "आपकी उम्र क्या है?"})
	require.NoError(t, err)
	assert.Equal(t, "आपकी उम्र क्या है?", f.resolver.Resolve("hi", "assessment.age"))

	_, err = f.translations.UpdateTranslation(ctx, tr.ID, models.TranslationPatch{Status: strPtr(models.StatusRejected)})
	require.NoError(t, err)
	assert.Equal(t, "What is your age?", f.resolver.Resolve("hi", "assessment.age"))

	_, err = f.translations.DeleteKey(ctx, key.ID)
	require.NoError(t, err)
	assert.Equal(t, "assessment.age", f.resolver.Resolve("hi", "assessment.age"))
}

func TestCatalogService_BaseLayer(t *testing.T) {
	logger := testLogger()
	store := repository.NewMemoryStore()
	resolver := i18n.NewResolver(models.DefaultLanguage)

	base, err := i18n.ParseTree([]byte(`{"nav":{"home":"Start","about":"About"}}`))
	require.NoError(t, err)
	catalogs := NewCatalogService(store, resolver, map[string]*i18n.Tree{"en": base}, logger)

	key := &models.TranslationKey{KeyName: "nav.home", SourceText: "Home", Category: "navigation"}
	require.NoError(t, store.CreateKey(context.Background(), key))
	require.NoError(t, catalogs.Rebuild(context.Background()))

	assert.Equal(t, "Home", resolver.Resolve("en", "nav.home"))
	assert.Equal(t, "About", resolver.Resolve("hi", "nav.about"))

	text, ok := base.Lookup("nav.home")
	assert.True(t, ok)
	assert.Equal(t, "Start", text)
}

// gatedRepo holds the first ListKeys call, after its read, until release closes.
type gatedRepo struct {
	repository.TranslationRepository
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) ListKeys(ctx context.Context, category string) ([]models.TranslationKey, error) {
	keys, err := r.TranslationRepository.ListKeys(ctx, category)
	if r.calls.Add(1) == 1 {
		close(r.entered)
		<-r.release
	}
	return keys, err
}

func TestCatalogService_OverlappingRebuildsKeepNewest(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	resolver := i18n.NewResolver(models.DefaultLanguage)
	repo := &gatedRepo{TranslationRepository: store, entered: make(chan struct{}), release: make(chan struct{})}
	catalogs := NewCatalogService(repo, resolver, nil, testLogger())

	require.NoError(t, store.CreateKey(ctx, &models.TranslationKey{KeyName: "a", SourceText: "A", Category: "content"}))

	first := make(chan error, 1)
	go func() { first <- catalogs.Rebuild(ctx) }()
	<-repo.entered

	require.NoError(t, store.CreateKey(ctx, &models.TranslationKey{KeyName: "b", SourceText: "B", Category: "content"}))
	second := make(chan error, 1)
	go func() { second <- catalogs.Rebuild(ctx) }()

	select {
	case err := <-second:
		t.Fatalf("second rebuild finished while the first was still building: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(repo.release)
	require.NoError(t, <-first)
	require.NoError(t, <-second)

	assert.Equal(t, "A", resolver.Resolve("en", "a"))
	assert.Equal(t, "B", resolver.Resolve("en", "b"))
}

type recordingPublisher struct {
	published map[string]string
}

func (p *recordingPublisher) PublishCatalog(ctx context.Context, lang string, catalog *i18n.Tree) (string, error) {
	data, err := json.Marshal(catalog)
	if err != nil {
		return "", err
	}
	p.published[lang] = string(data)
	return "https://cdn.example.com/bonehealth/translations/" + lang + ".json", nil
}

func TestCatalogService_Publish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalogs.Publish(ctx)
	assert.ErrorIs(t, err, ErrPublishingDisabled)

	pub := &recordingPublisher{published: map[string]string{}}
	f.catalogs.SetPublisher(pub)
	f.createKey(t, "hero.title", "Strong bones")

	out, err := f.catalogs.Publish(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.JSONEq(t, `{"hero":{"title":"Strong bones"}}`, pub.published["en"])
	assert.JSONEq(t, `{}`, pub.published["hi"])
	assert.Equal(t, 1, out[0].Entries)

	_, err = f.catalogs.Publish(ctx, "fr")
	var vErr *repository.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestAssessmentService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	responses := json.RawMessage(`{
		"age": "over60",
		"ethnicity": "east-asian",
		"menopause": "early",
		"family-history": ["mother"],
		"lifestyle": ["smoking", "sedentary"],
		"notes": 42
	}`)

	record, err := f.assessments.Submit(ctx, AssessmentSubmission{Language: "hi", Responses: responses})
	require.NoError(t, err)
	assert.NotEmpty(t, record.SessionID)
	assert.Equal(t, 14, record.RiskScore)
	assert.Equal(t, assessment.TierHigh, record.RiskLevel)

	var recs []string
	require.NoError(t, json.Unmarshal(record.Recommendations, &recs))
	assert.Equal(t, "Schedule immediate consultation with healthcare provider", recs[0])
	assert.Equal(t, `{"age":"over60","ethnicity":"east-asian","menopause":"early","family-history":["mother"],"lifestyle":["smoking","sedentary"],"notes":42}`, string(record.Responses))

	latest, err := f.assessments.Latest(ctx, record.SessionID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, latest.ID)

	_, err = f.assessments.Latest(ctx, "unknown")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssessmentService_SubmitResponseShapes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		record, err := f.assessments.Submit(ctx, AssessmentSubmission{Responses: raw})
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(record.Responses))
		assert.Equal(t, models.DefaultLanguage, record.Language)
	}

	for _, raw := range []string{`[]`, `"over60"`, `5`} {
		_, err := f.assessments.Submit(ctx, AssessmentSubmission{Responses: json.RawMessage(raw)})
		var vErr *repository.ValidationError
		require.True(t, errors.As(err, &vErr), raw)
		assert.Equal(t, "responses", vErr.Field)
	}
}

func TestAssessmentService_LocalizesRecommendations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	key := f.createKey(t, "recommendations.low1", "Continue with regular exercise and calcium-rich diet")
	_, err := f.translations.UpsertTranslation(ctx, models.TranslationInput{KeyID: key.ID, LanguageCode: "hi", TranslatedText: "नियमित व्यायाम जारी रखें"})
	require.NoError(t, err)

	res := f.assessments.Evaluate("hi", assessment.Responses{})
	assert.Equal(t, 0, res.RiskScore)
	assert.Equal(t, assessment.TierLow, res.RiskLevel)
	require.Len(t, res.Recommendations, 3)
	assert.Equal(t, "नियमित व्यायाम जारी रखें", res.Recommendations[0])
	assert.Equal(t, "Consider bone density screening in 2-3 years", res.Recommendations[1])
}

func TestAssessmentService_Questions(t *testing.T) {
	f := newFixture(t)
	questions := f.assessments.Questions("hi")
	require.Len(t, questions, 5)
	assert.Equal(t, "What is your age?", questions[0].Question)
	assert.Equal(t, "Over 60", questions[0].Options[3].Label)
	assert.Equal(t, assessment.MultiChoice, questions[4].Type)
}

func TestProjectService(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(repository.NewMemoryStore(), testLogger())

	err := svc.CreateProject(ctx, &models.TranslationProject{Name: " "})
	var vErr *repository.ValidationError
	require.True(t, errors.As(err, &vErr))

	p := &models.TranslationProject{Name: "Hindi launch"}
	require.NoError(t, svc.CreateProject(ctx, p))
	assert.Equal(t, models.ProjectActive, p.Status)

	updated, err := svc.UpdateProject(ctx, p.ID, models.TranslationProjectPatch{Status: strPtr(models.ProjectCompleted)})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectCompleted, updated.Status)

	_, err = svc.UpdateProject(ctx, p.ID, models.TranslationProjectPatch{Status: strPtr("paused")})
	assert.True(t, errors.As(err, &vErr))

	_, err = svc.UpdateProject(ctx, 99, models.TranslationProjectPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
