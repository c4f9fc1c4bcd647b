package handlers

import (
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/services"
	"bonehealth-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProjectHandler struct {
	service services.ProjectService
	logger  *logrus.Logger
}

func NewProjectHandler(service services.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, logger: logger}
}

// ListProjects godoc
// @Summary List translation projects
// @Tags translation-projects
// @Produce json
// @Success 200 {array} models.TranslationProject
// @Router /api/translation-projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.service.ListProjects(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "", "Failed to fetch translation projects")
	}
	return c.JSON(projects)
}

// CreateProject godoc
// @Summary Create a translation project
// @Tags translation-projects
// @Accept json
// @Produce json
// @Param project body CreateProjectRequest true "Project"
// @Success 201 {object} models.TranslationProject
// @Failure 400 {object} utils.StandardResponse "Invalid project data"
// @Router /api/translation-projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid project data", errs)
	}

	project := &models.TranslationProject{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := h.service.CreateProject(c.Context(), project); err != nil {
		return respondError(c, h.logger, err, "", "Failed to create translation project")
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject godoc
// @Summary Update a translation project
// @Tags translation-projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.TranslationProject
// @Failure 400 {object} utils.StandardResponse "Invalid project data"
// @Failure 404 {object} utils.StandardResponse "Translation project not found"
// @Router /api/translation-projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid project data", errs)
	}

	project, err := h.service.UpdateProject(c.Context(), id, req.patch())
	if err != nil {
		return respondError(c, h.logger, err, "Translation project not found", "Failed to update translation project")
	}
	return c.JSON(project)
}
