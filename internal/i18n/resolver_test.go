package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	en, err := ParseTree([]byte(`{
		"hero": {"title": "Strong bones for life"},
		"assessment": {"age": "What is your age?", "count": 3},
		"empty": ""
	}`))
	require.NoError(t, err)

	hi, err := ParseTree([]byte(`{
		"hero": {"title": "जीवन भर मजबूत हड्डियाँ"},
		"assessment": {"age": 7},
		"blank": ""
	}`))
	require.NoError(t, err)

	r := NewResolver("en")
	r.Replace(map[string]*Tree{"en": en, "hi": hi})
	return r
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		fallback []string
		want     string
	}{
		{"requested language", "hi", "hero.title", nil, "जीवन भर मजबूत हड्डियाँ"},
		{"default language fallback", "hi", "assessment.age", nil, "What is your age?"},
		{"unknown language uses default", "fr", "hero.title", nil, "Strong bones for life"},
		{"fallback literal", "hi", "nope.missing", []string{"X"}, "X"},
		{"raw key", "hi", "nope.missing", nil, "nope.missing"},
		{"empty fallback literal ignored", "hi", "nope.missing", []string{""}, "nope.missing"},
		{"present empty string", "hi", "blank", []string{"X"}, ""},
		{"present empty string in default", "hi", "empty", []string{"X"}, ""},
		{"number leaf falls through", "en", "assessment.count", []string{"X"}, "X"},
		{"branch is not a string", "en", "hero", nil, "hero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.lang, tt.key, tt.fallback...))
		})
	}
}

func TestResolver_ResolveDetail(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, SourceRequested, r.ResolveDetail("hi", "hero.title", "").Source)

	res := r.ResolveDetail("hi", "assessment.age", "")
	assert.Equal(t, SourceDefault, res.Source)
	assert.Equal(t, "en", res.Language)

	assert.Equal(t, SourceFallback, r.ResolveDetail("hi", "x.y", "lit").Source)
	res = r.ResolveDetail("hi", "x.y", "")
	assert.Equal(t, SourceKey, res.Source)
	assert.Equal(t, "x.y", res.Text)
	assert.Empty(t, res.Language)
}

func TestResolver_CatalogIsACopy(t *testing.T) {
	r := newTestResolver(t)

	c, ok := r.Catalog("en")
	require.True(t, ok)
	c.Set("hero.title", "mutated")

	assert.Equal(t, "Strong bones for life", r.Resolve("en", "hero.title"))

	_, ok = r.Catalog("fr")
	assert.False(t, ok)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"nav": {"home": "Home"}}`), 0o644))

	catalogs, err := LoadDir(dir, []string{"en", "hi"})
	require.NoError(t, err)
	require.Contains(t, catalogs, "en")
	assert.NotContains(t, catalogs, "hi")

	got, ok := catalogs["en"].Lookup("nav.home")
	assert.True(t, ok)
	assert.Equal(t, "Home", got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hi.json"), []byte(`not json`), 0o644))
	_, err = LoadDir(dir, []string{"en", "hi"})
	assert.Error(t, err)
}
