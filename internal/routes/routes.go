package routes

import (
	"bonehealth-backend/internal/handlers"
	"bonehealth-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything the route table binds.
type Handlers struct {
	Keys         *handlers.TranslationKeyHandler
	Translations *handlers.TranslationHandler
	Projects     *handlers.ProjectHandler
	Assessments  *handlers.AssessmentHandler
	I18n         *handlers.I18nHandler
}

func Setup(app *fiber.App, h Handlers, defaultLanguage string) {
	app.Use(middleware.Language(defaultLanguage))

	// Static-style catalog files consumed by the frontend resolver
	app.Get("/translations/:file", h.I18n.Catalog)

	api := app.Group("/api")

	api.Get("/languages", h.I18n.Languages)
	api.Get("/i18n/resolve", h.I18n.Resolve)

	// Translation keys
	keys := api.Group("/translation-keys")
	{
		keys.Get("/", h.Keys.ListKeys)
		keys.Get("/:id", h.Keys.GetKey)
		keys.Post("/", h.Keys.CreateKey)
		keys.Put("/:id", h.Keys.UpdateKey)
		keys.Delete("/:id", h.Keys.DeleteKey)
	}

	// Translations, bulk transfer and publishing
	translations := api.Group("/translations")
	{
		translations.Get("/export", h.Translations.Export)
		translations.Post("/import", h.Translations.Import)
		translations.Post("/publish", h.Translations.Publish)

		translations.Get("/", h.Translations.ListTranslations)
		translations.Post("/", h.Translations.UpsertTranslation)
		translations.Put("/:id", h.Translations.UpdateTranslation)
		translations.Delete("/:id", h.Translations.DeleteTranslation)
	}

	projects := api.Group("/translation-projects")
	{
		projects.Get("/", h.Projects.ListProjects)
		projects.Post("/", h.Projects.CreateProject)
		projects.Put("/:id", h.Projects.UpdateProject)
	}

	assessments := api.Group("/risk-assessment")
	{
		assessments.Get("/questions", h.Assessments.Questions)
		assessments.Post("/score", h.Assessments.Score)
		assessments.Post("/", h.Assessments.Submit)
		assessments.Get("/:sessionId", h.Assessments.GetBySession)
	}
}
