package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Resolution sources, in fallback order.
const (
	SourceRequested = "requested"
	SourceDefault   = "default"
	SourceFallback  = "fallback"
	SourceKey       = "key"
)

// Resolution describes how a key was resolved.
type Resolution struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	Source   string `json:"source"`
}

// Resolver answers dotted-path lookups from in-memory catalogs. It is built
// once at startup and its catalogs are swapped wholesale on rebuild; lookups
// never do I/O.
type Resolver struct {
	mu          sync.RWMutex
	catalogs    map[string]*Tree
	defaultLang string
}

func NewResolver(defaultLang string) *Resolver {
	return &Resolver{
		catalogs:    make(map[string]*Tree),
		defaultLang: defaultLang,
	}
}

func (r *Resolver) DefaultLanguage() string {
	return r.defaultLang
}

// Replace swaps in a complete set of catalogs.
func (r *Resolver) Replace(catalogs map[string]*Tree) {
	next := make(map[string]*Tree, len(catalogs))
	for lang, t := range catalogs {
		next[lang] = t
	}

	r.mu.Lock()
	r.catalogs = next
	r.mu.Unlock()
}

// Catalog returns a copy of the catalog for lang.
func (r *Resolver) Catalog(lang string) (*Tree, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.catalogs[lang]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// Resolve returns the best text for key: the requested language, then the
// default language, then the first non-empty fallback literal, then key itself.
func (r *Resolver) Resolve(lang, key string, fallback ...string) string {
	literal := ""
	for _, f := range fallback {
		if f != "" {
			literal = f
			break
		}
	}
	return r.ResolveDetail(lang, key, literal).Text
}

func (r *Resolver) ResolveDetail(lang, key, fallback string) Resolution {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if text, ok := r.catalogs[lang].Lookup(key); ok {
		return Resolution{Text: text, Language: lang, Source: SourceRequested}
	}
	if lang != r.defaultLang {
		if text, ok := r.catalogs[r.defaultLang].Lookup(key); ok {
			return Resolution{Text: text, Language: r.defaultLang, Source: SourceDefault}
		}
	}
	if fallback != "" {
		return Resolution{Text: fallback, Source: SourceFallback}
	}
	return Resolution{Text: key, Source: SourceKey}
}

// LoadDir reads {lang}.json for each language from dir. Missing files are
// skipped; malformed files are an error.
func LoadDir(dir string, languages []string) (map[string]*Tree, error) {
	catalogs := make(map[string]*Tree, len(languages))
	for _, lang := range languages {
		path := filepath.Join(dir, lang+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		t, err := ParseTree(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		catalogs[lang] = t
	}
	return catalogs, nil
}
