package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"bonehealth-backend/internal/i18n"
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// ErrPublishingDisabled is returned by Publish when no object storage is configured.
var ErrPublishingDisabled = errors.New("catalog publishing is not configured")

// CatalogPublisher uploads a rendered catalog and returns its public URL.
type CatalogPublisher interface {
	PublishCatalog(ctx context.Context, lang string, catalog *i18n.Tree) (string, error)
}

// PublishedCatalog describes one uploaded catalog.
type PublishedCatalog struct {
	Language string `json:"languageCode" example:"hi"`
	URL      string `json:"url" example:"https://cdn.example.com/bonehealth/translations/hi.json"`
	Entries  int    `json:"entries" example:"120"`
}

// CatalogService keeps the resolver's catalogs in step with the store.
// Static catalogs form the base layer; store contents are merged on top.
type CatalogService struct {
	// mu serializes rebuilds so a slower build never replaces a newer one.
	mu        sync.Mutex
	repo      repository.TranslationRepository
	resolver  *i18n.Resolver
	base      map[string]*i18n.Tree
	publisher CatalogPublisher
	logger    *logrus.Logger
}

func NewCatalogService(repo repository.TranslationRepository, resolver *i18n.Resolver, base map[string]*i18n.Tree, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		resolver: resolver,
		base:     base,
		logger:   logger,
	}
}

func (s *CatalogService) SetPublisher(p CatalogPublisher) {
	s.publisher = p
}

// Build renders one catalog per supported language. The default language
// starts from every key's source text; translations override per language.
// Rejected translations are left out.
func (s *CatalogService) Build(ctx context.Context) (map[string]*i18n.Tree, error) {
	keys, err := s.repo.ListKeys(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list translation keys: %w", err)
	}
	translations, err := s.repo.ListTranslations(ctx, 0, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	// Oldest first, so a newer key wins when dotted paths collide.
	sort.Slice(keys, func(i, j int) bool { return keys[i].ID < keys[j].ID })
	sort.Slice(translations, func(i, j int) bool {
		if translations[i].KeyID != translations[j].KeyID {
			return translations[i].KeyID < translations[j].KeyID
		}
		return translations[i].ID < translations[j].ID
	})

	layers := make(map[string]*i18n.Tree, len(models.SupportedLanguages))
	for _, lang := range models.LanguageCodes() {
		layers[lang] = i18n.NewTree()
	}

	names := make(map[uint]string, len(keys))
	defaultTree := layers[s.resolver.DefaultLanguage()]
	for _, k := range keys {
		names[k.ID] = k.KeyName
		if defaultTree != nil {
			defaultTree.Set(k.KeyName, k.SourceText)
		}
	}

	for _, t := range translations {
		if t.Status == models.StatusRejected {
			continue
		}
		name, ok := names[t.KeyID]
		if !ok {
			continue
		}
		tree, ok := layers[t.LanguageCode]
		if !ok {
			continue
		}
		tree.Set(name, t.TranslatedText)
	}

	catalogs := make(map[string]*i18n.Tree, len(layers))
	for lang, layer := range layers {
		tree := i18n.NewTree()
		if base, ok := s.base[lang]; ok {
			tree = base.Clone()
		}
		tree.Merge(layer)
		catalogs[lang] = tree
	}
	return catalogs, nil
}

// Rebuild renders the catalogs and swaps them into the resolver.
func (s *CatalogService) Rebuild(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	catalogs, err := s.Build(ctx)
	if err != nil {
		return err
	}
	s.resolver.Replace(catalogs)

	fields := logrus.Fields{"duration": time.Since(start).String()}
	for lang, tree := range catalogs {
		fields["entries_"+lang] = tree.Len()
	}
	s.logger.WithFields(fields).Debug("Translation catalogs rebuilt")
	return nil
}

// refresh rebuilds after a mutation. The mutation already succeeded, so a
// failure here is logged rather than returned.
func (s *CatalogService) refresh(ctx context.Context) {
	if err := s.Rebuild(ctx); err != nil {
		s.logger.WithError(err).Warn("Failed to rebuild translation catalogs")
	}
}

// Publish uploads the current catalog for each requested language, or every
// supported language when none is given.
func (s *CatalogService) Publish(ctx context.Context, languages ...string) ([]PublishedCatalog, error) {
	if s.publisher == nil {
		return nil, ErrPublishingDisabled
	}
	if len(languages) == 0 {
		languages = models.LanguageCodes()
	}

	published := make([]PublishedCatalog, 0, len(languages))
	for _, lang := range languages {
		if !models.IsSupportedLanguage(lang) {
			return nil, &repository.ValidationError{Field: "languageCode", Message: fmt.Sprintf("unsupported language code %q", lang)}
		}
		tree, ok := s.resolver.Catalog(lang)
		if !ok {
			tree = i18n.NewTree()
		}
		url, err := s.publisher.PublishCatalog(ctx, lang, tree)
		if err != nil {
			return nil, fmt.Errorf("failed to publish %s catalog: %w", lang, err)
		}
		published = append(published, PublishedCatalog{Language: lang, URL: url, Entries: tree.Len()})
	}
	return published, nil
}
