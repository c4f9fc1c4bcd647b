package repository

import (
	"context"
	"errors"
	"time"

	"bonehealth-backend/internal/database"
	"bonehealth-backend/internal/models"

	"gorm.io/gorm"
)

type assessmentRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewAssessmentRepository(db *database.Database) AssessmentRepository {
	return &assessmentRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *assessmentRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *assessmentRepository) CreateAssessment(ctx context.Context, assessment *models.RiskAssessment) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(assessment).Error; err != nil {
		return storeError("create risk assessment", err)
	}
	return nil
}

// FindLatestBySession returns the newest assessment for a session id; ids are not
// guaranteed unique across submissions.
func (r *assessmentRepository) FindLatestBySession(ctx context.Context, sessionID string) (*models.RiskAssessment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var assessment models.RiskAssessment
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeError("find risk assessment", err)
	}
	return &assessment, nil
}
