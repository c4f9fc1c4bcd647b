package models

// Language is one entry of the closed supported-language enumeration.
type Language struct {
	Code string `json:"code" example:"hi"`
	Name string `json:"name" example:"हिन्दी (Hindi)"`
}

// DefaultLanguage is the fallback language for catalogs and lookups.
const DefaultLanguage = "en"

// SupportedLanguages is ordered; the first entry is the default language.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिन्दी (Hindi)"},
}

func IsSupportedLanguage(code string) bool {
	_, ok := LanguageName(code)
	return ok
}

// LanguageName returns the display name for a supported language code.
func LanguageName(code string) (string, bool) {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// LanguageCodes returns the supported codes in enumeration order.
func LanguageCodes() []string {
	codes := make([]string, 0, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		codes = append(codes, l.Code)
	}
	return codes
}

// LanguageMap returns the enumeration as code -> display name.
func LanguageMap() map[string]string {
	m := make(map[string]string, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		m[l.Code] = l.Name
	}
	return m
}
