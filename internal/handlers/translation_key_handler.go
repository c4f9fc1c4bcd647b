package handlers

import (
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/services"
	"bonehealth-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TranslationKeyHandler struct {
	service services.TranslationService
	logger  *logrus.Logger
}

func NewTranslationKeyHandler(service services.TranslationService, logger *logrus.Logger) *TranslationKeyHandler {
	return &TranslationKeyHandler{
		service: service,
		logger:  logger,
	}
}

// ListKeys godoc
// @Summary List translation keys
// @Description List translation keys, newest first, optionally filtered by category
// @Tags translation-keys
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.TranslationKey
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /api/translation-keys [get]
func (h *TranslationKeyHandler) ListKeys(c *fiber.Ctx) error {
	keys, err := h.service.ListKeys(c.Context(), c.Query("category"))
	if err != nil {
		return respondError(c, h.logger, err, "", "Failed to fetch translation keys")
	}
	return c.JSON(keys)
}

// GetKey godoc
// @Summary Get a translation key
// @Tags translation-keys
// @Produce json
// @Param id path int true "Translation key ID"
// @Success 200 {object} models.TranslationKey
// @Failure 400 {object} utils.StandardResponse "Invalid ID"
// @Failure 404 {object} utils.StandardResponse "Translation key not found"
// @Router /api/translation-keys/{id} [get]
func (h *TranslationKeyHandler) GetKey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation key ID")
	}

	key, err := h.service.GetKey(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Translation key not found", "Failed to fetch translation key")
	}
	return c.JSON(key)
}

// CreateKey godoc
// @Summary Create a translation key
// @Tags translation-keys
// @Accept json
// @Produce json
// @Param key body CreateTranslationKeyRequest true "Translation key"
// @Success 201 {object} models.TranslationKey
// @Failure 400 {object} utils.StandardResponse "Invalid key data"
// @Failure 409 {object} utils.StandardResponse "Key name already exists"
// @Router /api/translation-keys [post]
func (h *TranslationKeyHandler) CreateKey(c *fiber.Ctx) error {
	var req CreateTranslationKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid key data", errs)
	}

	key := &models.TranslationKey{
		KeyName:    req.KeyName,
		SourceText: req.SourceText,
		Category:   req.Category,
		Context:    req.Context,
	}
	if err := h.service.CreateKey(c.Context(), key); err != nil {
		return respondError(c, h.logger, err, "", "Failed to create translation key")
	}
	return c.Status(fiber.StatusCreated).JSON(key)
}

// UpdateKey godoc
// @Summary Update a translation key
// @Description Partial update; omitted fields are left unchanged
// @Tags translation-keys
// @Accept json
// @Produce json
// @Param id path int true "Translation key ID"
// @Param key body UpdateTranslationKeyRequest true "Fields to change"
// @Success 200 {object} models.TranslationKey
// @Failure 400 {object} utils.StandardResponse "Invalid key data"
// @Failure 404 {object} utils.StandardResponse "Translation key not found"
// @Failure 409 {object} utils.StandardResponse "Key name already exists"
// @Router /api/translation-keys/{id} [put]
func (h *TranslationKeyHandler) UpdateKey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation key ID")
	}

	var req UpdateTranslationKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid key data", errs)
	}

	key, err := h.service.UpdateKey(c.Context(), id, req.patch())
	if err != nil {
		return respondError(c, h.logger, err, "Translation key not found", "Failed to update translation key")
	}
	return c.JSON(key)
}

// DeleteKey godoc
// @Summary Delete a translation key
// @Description Deletes the key and all of its translations
// @Tags translation-keys
// @Produce json
// @Param id path int true "Translation key ID"
// @Success 200 {object} utils.StandardResponse "Translation key deleted"
// @Failure 404 {object} utils.StandardResponse "Translation key not found"
// @Router /api/translation-keys/{id} [delete]
func (h *TranslationKeyHandler) DeleteKey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid translation key ID")
	}

	deleted, err := h.service.DeleteKey(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Translation key not found", "Failed to delete translation key")
	}
	if !deleted {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation key not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Translation key deleted successfully", nil)
}
