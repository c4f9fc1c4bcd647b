package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "bonehealth-backend/docs"
	"bonehealth-backend/internal/config"
	"bonehealth-backend/internal/database"
	"bonehealth-backend/internal/handlers"
	"bonehealth-backend/internal/i18n"
	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"
	"bonehealth-backend/internal/routes"
	"bonehealth-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Bone Health Backend API
// @version 1.0
// @description Translation management, catalog delivery and bone-health risk assessment API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /
// @schemes http https

// stores bundles the repositories of the active storage driver.
type stores struct {
	translations repository.TranslationRepository
	projects     repository.ProjectRepository
	assessments  repository.AssessmentRepository
	close        func() error
}

func main() {
	// Load environment variables
	loadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st, err := openStores(cfg, log)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Errorf("Error closing storage: %v", err)
		}
	}()

	base := map[string]*i18n.Tree{}
	if cfg.I18n.CatalogDir != "" {
		base, err = i18n.LoadDir(cfg.I18n.CatalogDir, models.LanguageCodes())
		if err != nil {
			log.Fatalf("Failed to load base catalogs: %v", err)
		}
		log.WithFields(logrus.Fields{
			"dir":       cfg.I18n.CatalogDir,
			"languages": len(base),
		}).Info("Base catalogs loaded")
	}

	resolver := i18n.NewResolver(cfg.I18n.DefaultLanguage)
	catalogs := services.NewCatalogService(st.translations, resolver, base, log)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogs.Rebuild(startupCtx); err != nil {
		log.Warnf("Initial catalog build failed: %v", err)
	}
	cancel()

	if cfg.MinIO.Enabled {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		catalogs.SetPublisher(minioService)
	}

	translationService := services.NewTranslationService(st.translations, catalogs, log)
	transferService := services.NewTransferService(st.translations, catalogs, log)
	projectService := services.NewProjectService(st.projects, log)
	assessmentService := services.NewAssessmentService(st.assessments, resolver, log)

	h := routes.Handlers{
		Keys:         handlers.NewTranslationKeyHandler(translationService, log),
		Translations: handlers.NewTranslationHandler(translationService, transferService, catalogs, log),
		Projects:     handlers.NewProjectHandler(projectService, log),
		Assessments:  handlers.NewAssessmentHandler(assessmentService, log),
		I18n:         handlers.NewI18nHandler(resolver, log),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Bone Health Backend API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", handlers.HealthCheck(st.translations, cfg.Storage.Driver))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, h, cfg.I18n.DefaultLanguage)

	go gracefulShutdown(app, log)

	log.WithFields(logrus.Fields{
		"port":     cfg.Server.Port,
		"storage":  cfg.Storage.Driver,
		"language": cfg.I18n.DefaultLanguage,
	}).Info("Bone Health Backend API starting")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func openStores(cfg *config.Config, log *logrus.Logger) (*stores, error) {
	if !cfg.UsePostgres() {
		log.Info("Using in-memory storage")
		mem := repository.NewMemoryStore()
		return &stores{
			translations: mem,
			projects:     mem,
			assessments:  mem,
			close:        func() error { return nil },
		}, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	return &stores{
		translations: repository.NewTranslationRepository(db),
		projects:     repository.NewProjectRepository(db),
		assessments:  repository.NewAssessmentRepository(db),
		close:        db.Close,
	}, nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if cfg.IsDevelopment() {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Debugf("No environment file loaded, using process environment")
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
		return
	}
	log.Infof("Environment loaded from file %s", envFile)
}
