package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"bonehealth-backend/internal/models"
)

// MemoryStore is the in-process storage variant. It implements TranslationRepository,
// ProjectRepository and AssessmentRepository behind a single mutex, so every
// mutation, including the cascading key delete, is atomic.
type MemoryStore struct {
	mu           sync.RWMutex
	keys         map[uint]models.TranslationKey
	translations map[uint]models.Translation
	projects     map[uint]models.TranslationProject
	assessments  []models.RiskAssessment

	nextKeyID         uint
	nextTranslationID uint
	nextProjectID     uint
	nextAssessmentID  uint

	now func() time.Time
}

var (
	_ TranslationRepository = (*MemoryStore)(nil)
	_ ProjectRepository     = (*MemoryStore)(nil)
	_ AssessmentRepository  = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys:         make(map[uint]models.TranslationKey),
		translations: make(map[uint]models.Translation),
		projects:     make(map[uint]models.TranslationProject),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) CreateKey(ctx context.Context, key *models.TranslationKey) error {
	if err := validateKeyName(key.KeyName); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keyByNameLocked(key.KeyName); ok {
		return ErrDuplicateKey
	}

	s.nextKeyID++
	now := s.now()
	key.ID = s.nextKeyID
	key.CreatedAt = now
	key.UpdatedAt = now
	s.keys[key.ID] = *key
	return nil
}

func (s *MemoryStore) UpdateKey(ctx context.Context, id uint, patch models.TranslationKeyPatch) (*models.TranslationKey, error) {
	if patch.KeyName != nil {
		if err := validateKeyName(*patch.KeyName); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.keys[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.KeyName != nil && *patch.KeyName != key.KeyName {
		if _, taken := s.keyByNameLocked(*patch.KeyName); taken {
			return nil, ErrDuplicateKey
		}
	}

	applyKeyPatch(&key, patch)
	key.UpdatedAt = s.now()
	s.keys[id] = key
	return &key, nil
}

func (s *MemoryStore) DeleteKey(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[id]; !ok {
		return false, nil
	}
	for tid, t := range s.translations {
		if t.KeyID == id {
			delete(s.translations, tid)
		}
	}
	delete(s.keys, id)
	return true, nil
}

func (s *MemoryStore) FindKeyByID(ctx context.Context, id uint) (*models.TranslationKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[id]
	if !ok {
		return nil, nil
	}
	return &key, nil
}

func (s *MemoryStore) FindKeyByName(ctx context.Context, keyName string) (*models.TranslationKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keyByNameLocked(keyName)
	if !ok {
		return nil, nil
	}
	return &key, nil
}

func (s *MemoryStore) ListKeys(ctx context.Context, category string) ([]models.TranslationKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]models.TranslationKey, 0, len(s.keys))
	for _, k := range s.keys {
		if category == "" || k.Category == category {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].CreatedAt.Equal(keys[j].CreatedAt) {
			return keys[i].CreatedAt.After(keys[j].CreatedAt)
		}
		return keys[i].ID > keys[j].ID
	})
	return keys, nil
}

func (s *MemoryStore) UpsertTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	if err := validateLanguage(in.LanguageCode); err != nil {
		return nil, err
	}
	if err := validateStatus(in.Status); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[in.KeyID]; !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if existing, ok := s.translationLocked(in.KeyID, in.LanguageCode); ok {
		applyInput(&existing, in)
		existing.UpdatedAt = now
		s.translations[existing.ID] = existing
		return &existing, nil
	}

	t := newTranslation(in)
	s.nextTranslationID++
	t.ID = s.nextTranslationID
	t.CreatedAt = now
	t.UpdatedAt = now
	s.translations[t.ID] = t
	return &t, nil
}

func (s *MemoryStore) UpdateTranslation(ctx context.Context, id uint, patch models.TranslationPatch) (*models.Translation, error) {
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

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.translations[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.LanguageCode != nil && *patch.LanguageCode != t.LanguageCode {
		if _, taken := s.translationLocked(t.KeyID, *patch.LanguageCode); taken {
			return nil, ErrDuplicateTranslation
		}
	}

	applyTranslationPatch(&t, patch)
	t.UpdatedAt = s.now()
	s.translations[id] = t
	return &t, nil
}

func (s *MemoryStore) DeleteTranslation(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.translations[id]; !ok {
		return false, nil
	}
	delete(s.translations, id)
	return true, nil
}

func (s *MemoryStore) FindTranslation(ctx context.Context, keyID uint, languageCode string) (*models.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.translationLocked(keyID, languageCode)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *MemoryStore) ListTranslations(ctx context.Context, keyID uint, languageCode string) ([]models.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Translation, 0)
	for _, t := range s.translations {
		if keyID > 0 && t.KeyID != keyID {
			continue
		}
		if languageCode != "" && t.LanguageCode != languageCode {
			continue
		}
		out = append(out, t)
	}

	if keyID == 0 && languageCode == "" {
		sort.Slice(out, func(i, j int) bool {
			if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
				return out[i].UpdatedAt.After(out[j].UpdatedAt)
			}
			return out[i].ID > out[j].ID
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	}
	return out, nil
}

func (s *MemoryStore) Export(ctx context.Context, languageCode string) ([]models.TranslationRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.TranslationRow, 0, len(s.translations))
	for _, t := range s.translations {
		if languageCode != "" && t.LanguageCode != languageCode {
			continue
		}
		key, ok := s.keys[t.KeyID]
		if !ok {
			continue
		}
		rows = append(rows, models.TranslationRow{
			KeyName:        key.KeyName,
			SourceText:     key.SourceText,
			TranslatedText: t.TranslatedText,
			LanguageCode:   t.LanguageCode,
			Status:         t.Status,
			Category:       key.Category,
			Context:        key.Context,
			KeyID:          key.ID,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].KeyID != rows[j].KeyID {
			return rows[i].KeyID < rows[j].KeyID
		}
		return rows[i].LanguageCode < rows[j].LanguageCode
	})
	return rows, nil
}

func (s *MemoryStore) ListProjects(ctx context.Context) ([]models.TranslationProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.TranslationProject, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID > projects[j].ID
	})
	return projects, nil
}

func (s *MemoryStore) CreateProject(ctx context.Context, project *models.TranslationProject) error {
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if !models.IsValidProjectStatus(project.Status) {
		return invalid("status", "must be one of active, completed, archived; got %q", project.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProjectID++
	now := s.now()
	project.ID = s.nextProjectID
	project.CreatedAt = now
	project.UpdatedAt = now
	s.projects[project.ID] = *project
	return nil
}

func (s *MemoryStore) UpdateProject(ctx context.Context, id uint, patch models.TranslationProjectPatch) (*models.TranslationProject, error) {
	if patch.Status != nil && !models.IsValidProjectStatus(*patch.Status) {
		return nil, invalid("status", "must be one of active, completed, archived; got %q", *patch.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyProjectPatch(&p, patch)
	p.UpdatedAt = s.now()
	s.projects[id] = p
	return &p, nil
}

func (s *MemoryStore) CreateAssessment(ctx context.Context, assessment *models.RiskAssessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAssessmentID++
	assessment.ID = s.nextAssessmentID
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = s.now()
	}
	s.assessments = append(s.assessments, *assessment)
	return nil
}

func (s *MemoryStore) FindLatestBySession(ctx context.Context, sessionID string) (*models.RiskAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.assessments) - 1; i >= 0; i-- {
		if s.assessments[i].SessionID == sessionID {
			a := s.assessments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) keyByNameLocked(keyName string) (models.TranslationKey, bool) {
	for _, k := range s.keys {
		if k.KeyName == keyName {
			return k, true
		}
	}
	return models.TranslationKey{}, false
}

func (s *MemoryStore) translationLocked(keyID uint, languageCode string) (models.Translation, bool) {
	for _, t := range s.translations {
		if t.KeyID == keyID && t.LanguageCode == languageCode {
			return t, true
		}
	}
	return models.Translation{}, false
}
