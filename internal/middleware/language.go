package middleware

import (
	"strings"

	"bonehealth-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// LanguageKey is the fiber.Locals key holding the negotiated language code.
const LanguageKey = "language"

// Language negotiates the request language: an explicit ?lang= wins, then
// the best Accept-Language match, then defaultLang.
func Language(defaultLang string) fiber.Handler {
	codes := []string{defaultLang}
	for _, code := range models.LanguageCodes() {
		if code != defaultLang {
			codes = append(codes, code)
		}
	}

	// The first tag is the matcher's fallback.
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tags = append(tags, language.Make(code))
	}
	matcher := language.NewMatcher(tags)

	return func(c *fiber.Ctx) error {
		c.Locals(LanguageKey, negotiate(c, matcher, codes, defaultLang))
		c.Vary(fiber.HeaderAcceptLanguage)
		return c.Next()
	}
}

func negotiate(c *fiber.Ctx, matcher language.Matcher, codes []string, defaultLang string) string {
	if lang := strings.ToLower(strings.TrimSpace(c.Query("lang"))); models.IsSupportedLanguage(lang) {
		return lang
	}

	accept := c.Get(fiber.HeaderAcceptLanguage)
	if accept == "" {
		return defaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(codes) {
		return defaultLang
	}
	return codes[idx]
}

// GetLanguage returns the negotiated language, or the default language when
// the middleware did not run.
func GetLanguage(c *fiber.Ctx) string {
	if lang, ok := c.Locals(LanguageKey).(string); ok && lang != "" {
		return lang
	}
	return models.DefaultLanguage
}
