package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "solvency-backend/internal/domain/audit"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append only; audit rows are never updated or deleted.
func (r *AuditRepository) Append(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListBySubmission(ctx context.Context, submissionID string) ([]domain.Event, error) {
	var out []domain.Event
	res := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("recorded_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *AuditRepository) List(ctx context.Context) ([]domain.Event, error) {
	var out []domain.Event
	res := r.db.WithContext(ctx).Order("recorded_at DESC, id DESC").Find(&out)
	return out, res.Error
}
