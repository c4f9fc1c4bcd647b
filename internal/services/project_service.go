package services

import (
	"context"
	"strings"

	"bonehealth-backend/internal/models"
	"bonehealth-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.TranslationProject, error)
	CreateProject(ctx context.Context, project *models.TranslationProject) error
	UpdateProject(ctx context.Context, id uint, patch models.TranslationProjectPatch) (*models.TranslationProject, error)
}

type projectService struct {
	repo   repository.ProjectRepository
	logger *logrus.Logger
}

func NewProjectService(repo repository.ProjectRepository, logger *logrus.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.TranslationProject, error) {
	return s.repo.ListProjects(ctx)
}

func (s *projectService) CreateProject(ctx context.Context, project *models.TranslationProject) error {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return &repository.ValidationError{Field: "name", Message: "is required"}
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"id": project.ID, "name": project.Name}).Info("Translation project created")
	return nil
}

func (s *projectService) UpdateProject(ctx context.Context, id uint, patch models.TranslationProjectPatch) (*models.TranslationProject, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, &repository.ValidationError{Field: "name", Message: "must not be empty"}
		}
		patch.Name = &name
	}
	return s.repo.UpdateProject(ctx, id, patch)
}
