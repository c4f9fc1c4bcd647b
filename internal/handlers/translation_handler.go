package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"bonehealth-backend/internal/services"
	"bonehealth-backend/internal/transfer"
	"bonehealth-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TranslationHandler struct {
	service   services.TranslationService
	transfers services.TransferService
	catalogs  *services.CatalogService
	logger    *logrus.Logger
}

func NewTranslationHandler(service services.TranslationService, transfers services.TransferService, catalogs *services.CatalogService, logger *logrus.Logger) *TranslationHandler {
	return &TranslationHandler{
		service:   service,
		transfers: transfers,
		catalogs:  catalogs,
		logger:    logger,
	}
}

// ListTranslations godoc
// @Summary List translations
// @Description List translations filtered by key and/or language
// @Tags translations
// @Produce json
// @Param keyId query int false "Translation key ID"
// @Param languageCode query string false "Language code"
// @Success 200 {array} models.Translation
// @Failure 400 {object} utils.StandardResponse "Invalid filter"
// @Router /api/translations [get]
func (h *TranslationHandler) ListTranslations(c *fiber.Ctx) error {
	var keyID uint
	if raw := c.Query("keyId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return utils.ValidationErrorResponse(c, "Invalid filter", []utils.FieldError{{Field: "keyId", Message: "must be a positive integer"}})
		}
		keyID = uint(id)
	}

	translations, err := h.service.ListTranslations(c.Context(), keyID, c.Query("languageCode"))
	if err != nil {
		return respondError(c, h.logger, err, "", "Failed to fetch translations")
	}
	return c.JSON(translations)
}

// UpsertTranslation godoc
// @Summary Create or update a translation
// @Description Creates the translation for (keyId, languageCode) or updates the existing one
// @Tags translations
// @Accept json
// @Produce json
// @Param translation body UpsertTranslationRequest true "Translation"
// @Success 200 {object} models.Translation
// @Failure 400 {object} utils.StandardResponse "Invalid translation data"
// @Failure 404 {object} utils.StandardResponse "Translation key not found"
// @Router /api/translations [post]
func (h *TranslationHandler) UpsertTranslation(c *fiber.Ctx) error {
	var req UpsertTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid translation data", errs)
	}

	translation, err := h.service.UpsertTranslation(c.Context(), req.input())
	if err != nil {
		return respondError(c, h.logger, err, "Translation key not found", "Failed to create translation")
	}
	return c.JSON(translation)
}

// UpdateTranslation godoc
// @Summary Update a translation
// @Tags translations
// @Accept json
// @Produce json
// @Param id path int true "Translation ID"
// @Param translation body UpdateTranslationRequest true "Fields to change"
// @Success 200 {object} models.Translation
// @Failure 400 {object} utils.StandardResponse "Invalid translation data"
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Failure 409 {object} utils.StandardResponse "Language already translated for this key"
// @Router /api/translations/{id} [put]
func (h *TranslationHandler) UpdateTranslation(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation ID")
	}

	var req UpdateTranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid translation data", errs)
	}

	translation, err := h.service.UpdateTranslation(c.Context(), id, req.patch())
	if err != nil {
		return respondError(c, h.logger, err, "Translation not found", "Failed to update translation")
	}
	return c.JSON(translation)
}

// DeleteTranslation godoc
// @Summary Delete a translation
// @Tags translations
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} utils.StandardResponse "Translation deleted"
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Router /api/translations/{id} [delete]
func (h *TranslationHandler) DeleteTranslation(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation ID")
	}

	deleted, err := h.service.DeleteTranslation(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Translation not found", "Failed to delete translation")
	}
	if !deleted {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation deleted successfully", nil)
}

// Export godoc
// @Summary Export translations
// @Description Download translations joined with their keys as JSON or CSV
// @Tags translations
// @Produce json
// @Produce text/csv
// @Param languageCode query string false "Language code"
// @Param format query string false "json or csv" default(json)
// @Success 200 {array} models.TranslationRow
// @Failure 400 {object} utils.StandardResponse "Invalid language or format"
// @Router /api/translations/export [get]
func (h *TranslationHandler) Export(c *fiber.Ctx) error {
	languageCode := c.Query("languageCode")
	format := strings.ToLower(c.Query("format", "json"))
	if format != "json" && format != "csv" {
		return utils.ValidationErrorResponse(c, "Invalid export format", []utils.FieldError{{Field: "format", Message: "must be json or csv"}})
	}

	rows, err := h.transfers.Export(c.Context(), languageCode)
	if err != nil {
		return respondError(c, h.logger, err, "", "Failed to export translations")
	}

	scope := languageCode
	if scope == "" {
		scope = "all"
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="translations-%s.%s"`, scope, format))

	if format == "csv" {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.SendString(transfer.EncodeCSV(rows))
	}
	return c.JSON(rows)
}

// Import godoc
// @Summary Import translations
// @Description Import a batch of rows. Each row is applied independently; failures are reported per row.
// @Description With format=csv the body is CSV text whose header must match the export header exactly.
// @Tags translations
// @Accept json
// @Accept text/csv
// @Produce json
// @Param format query string false "json or csv" default(json)
// @Param batch body ImportRequest false "Rows to import (JSON format)"
// @Success 200 {object} models.ImportResult
// @Failure 400 {object} utils.StandardResponse "Malformed batch or CSV header"
// @Router /api/translations/import [post]
func (h *TranslationHandler) Import(c *fiber.Ctx) error {
	csvBody := strings.EqualFold(c.Query("format"), "csv") ||
		strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), "text/csv")

	if csvBody {
		result, err := h.transfers.ImportCSV(c.Context(), string(c.Body()))
		if err != nil {
			return respondError(c, h.logger, err, "", "Failed to import translations")
		}
		return c.JSON(result)
	}

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil || req.Data == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Data must be an array of translation objects")
	}
	return c.JSON(h.transfers.ImportJSON(c.Context(), req.Data))
}

// Publish godoc
// @Summary Publish catalogs
// @Description Upload the current per-language catalogs to object storage
// @Tags translations
// @Produce json
// @Param languageCode query string false "Publish only this language"
// @Success 200 {array} services.PublishedCatalog
// @Failure 400 {object} utils.StandardResponse "Unsupported language"
// @Failure 503 {object} utils.StandardResponse "Object storage not configured"
// @Router /api/translations/publish [post]
func (h *TranslationHandler) Publish(c *fiber.Ctx) error {
	var languages []string
	if lang := c.Query("languageCode"); lang != "" {
		languages = append(languages, lang)
	}

	published, err := h.catalogs.Publish(c.Context(), languages...)
	if err != nil {
		return respondError(c, h.logger, err, "", "Failed to publish catalogs")
	}
	return c.JSON(published)
}
