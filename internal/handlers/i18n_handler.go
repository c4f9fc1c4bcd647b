package handlers

import (
	"strings"

	"bonehealth-backend/internal/i18n"
	"bonehealth-backend/internal/middleware"
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type I18nHandler struct {
	resolver *i18n.Resolver
	logger   *logrus.Logger
}

func NewI18nHandler(resolver *i18n.Resolver, logger *logrus.Logger) *I18nHandler {
	return &I18nHandler{resolver: resolver, logger: logger}
}

// Languages godoc
// @Summary Supported languages
// @Description Map of language code to display name
// @Tags i18n
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/languages [get]
func (h *I18nHandler) Languages(c *fiber.Ctx) error {
	return c.JSON(models.LanguageMap())
}

// Resolve godoc
// @Summary Resolve one key
// @Description Resolve a dotted key in the requested language, falling back to the default language, then the fallback literal, then the key itself
// @Tags i18n
// @Produce json
// @Param key query string true "Dotted key path"
// @Param lang query string false "Language code"
// @Param fallback query string false "Literal returned when no catalog has the key"
// @Success 200 {object} i18n.Resolution
// @Failure 400 {object} utils.StandardResponse "Missing key"
// @Router /api/i18n/resolve [get]
func (h *I18nHandler) Resolve(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return utils.ValidationErrorResponse(c, "Invalid request", []utils.FieldError{{Field: "key", Message: "is required"}})
	}
	return c.JSON(h.resolver.ResolveDetail(middleware.GetLanguage(c), key, c.Query("fallback")))
}

// Catalog godoc
// @Summary Per-language catalog
// @Description The nested catalog the frontend resolver walks, e.g. /translations/hi.json
// @Tags i18n
// @Produce json
// @Param file path string true "Catalog file name, {lang}.json"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.StandardResponse "Unknown language"
// @Router /translations/{file} [get]
func (h *I18nHandler) Catalog(c *fiber.Ctx) error {
	lang := strings.TrimSuffix(c.Params("file"), ".json")
	if !models.IsSupportedLanguage(lang) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Catalog not found")
	}

	tree, ok := h.resolver.Catalog(lang)
	if !ok {
		tree = i18n.NewTree()
	}
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.JSON(tree)
}
