package handlers

import (
	"bonehealth-backend/internal/middleware"
	"bonehealth-backend/internal/services"
	"bonehealth-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssessmentHandler struct {
	service services.AssessmentService
	logger  *logrus.Logger
}

func NewAssessmentHandler(service services.AssessmentService, logger *logrus.Logger) *AssessmentHandler {
	return &AssessmentHandler{service: service, logger: logger}
}

// Submit godoc
// @Summary Submit a risk assessment
// @Description Scores the responses, renders recommendations in the request language and stores the result.
// @Description Client-supplied riskScore and recommendations are ignored.
// @Tags risk-assessment
// @Accept json
// @Produce json
// @Param assessment body RiskAssessmentRequest true "Questionnaire responses"
// @Param lang query string false "Language for recommendations"
// @Success 201 {object} models.RiskAssessment
// @Failure 400 {object} utils.StandardResponse "Invalid assessment data"
// @Router /api/risk-assessment [post]
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	var req RiskAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.ValidationErrorResponse(c, "Invalid assessment data", errs)
	}

	lang := req.Language
	if lang == "" {
		lang = middleware.GetLanguage(c)
	}

	record, err := h.service.Submit(c.Context(), services.AssessmentSubmission{
		SessionID: req.SessionID,
		Language:  lang,
		Responses: req.Responses,
	})
	if err != nil {
		return respondError(c, h.logger, err, "", "Failed to create risk assessment")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetBySession godoc
// @Summary Get the latest risk assessment for a session
// @Tags risk-assessment
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.RiskAssessment
// @Failure 404 {object} utils.StandardResponse "Risk assessment not found"
// @Router /api/risk-assessment/{sessionId} [get]
func (h *AssessmentHandler) GetBySession(c *fiber.Ctx) error {
	record, err := h.service.Latest(c.Context(), c.Params("sessionId"))
	if err != nil {
		return respondError(c, h.logger, err, "Risk assessment not found", "Failed to fetch risk assessment")
	}
	return c.JSON(record)
}

// Score godoc
// @Summary Score responses without saving
// @Tags risk-assessment
// @Accept json
// @Produce json
// @Param responses body ScoreRequest true "Questionnaire responses"
// @Param lang query string false "Language for recommendations"
// @Success 200 {object} services.AssessmentResult
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /api/risk-assessment/score [post]
func (h *AssessmentHandler) Score(c *fiber.Ctx) error {
	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return c.JSON(h.service.Evaluate(middleware.GetLanguage(c), req.Responses))
}

// Questions godoc
// @Summary Get the questionnaire
// @Description Questions and option labels in the request language
// @Tags risk-assessment
// @Produce json
// @Param lang query string false "Language code"
// @Success 200 {array} services.LocalizedQuestion
// @Router /api/risk-assessment/questions [get]
func (h *AssessmentHandler) Questions(c *fiber.Ctx) error {
	return c.JSON(h.service.Questions(middleware.GetLanguage(c)))
}
