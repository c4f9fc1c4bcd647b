package repository

import (
	"context"
	"errors"
	"time"

	"bonehealth-backend/internal/database"
	"bonehealth-backend/internal/models"

	"gorm.io/gorm"
)

type projectRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewProjectRepository(db *database.Database) ProjectRepository {
	return &projectRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *projectRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]models.TranslationProject, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	projects := make([]models.TranslationProject, 0)
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, storeError("list translation projects", err)
	}
	return projects, nil
}

func (r *projectRepository) CreateProject(ctx context.Context, project *models.TranslationProject) error {
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if !models.IsValidProjectStatus(project.Status) {
		return invalid("status", "must be one of active, completed, archived; got %q", project.Status)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return storeError("create translation project", err)
	}
	return nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, id uint, patch models.TranslationProjectPatch) (*models.TranslationProject, error) {
	if patch.Status != nil && !models.IsValidProjectStatus(*patch.Status) {
		return nil, invalid("status", "must be one of active, completed, archived; got %q", *patch.Status)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var project models.TranslationProject
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}
		applyProjectPatch(&project, patch)
		return tx.Save(&project).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeError("update translation project", err)
	}
	return &project, nil
}

func applyProjectPatch(p *models.TranslationProject, patch models.TranslationProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
