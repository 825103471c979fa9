package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "solvency-backend/internal/domain/submission"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	var out domain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// Listing order everywhere: most recent first, ties broken by id.
const listOrder = "submitted_at DESC, id DESC"

func (r *SubmissionRepository) ListByInsurer(ctx context.Context, insurerID string) ([]domain.Submission, error) {
	var out []domain.Submission
	res := r.db.WithContext(ctx).
		Where("insurer_id = ?", insurerID).
		Order(listOrder).
		Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) ListByStatus(ctx context.Context, st domain.Status) ([]domain.Submission, error) {
	var out []domain.Submission
	res := r.db.WithContext(ctx).
		Where("status = ?", st).
		Order(listOrder).
		Find(&out)
	return out, res.Error
}

func (r *SubmissionRepository) ListPending(ctx context.Context) ([]domain.Submission, error) {
	return r.ListByStatus(ctx, domain.StatusSubmitted)
}

func (r *SubmissionRepository) List(ctx context.Context) ([]domain.Submission, error) {
	var out []domain.Submission
	res := r.db.WithContext(ctx).Order(listOrder).Find(&out)
	return out, res.Error
}

// Decide is the atomic compare-and-set: the WHERE clause checks the row
// is still Submitted and the UPDATE applies the whole transition in one
// statement. RowsAffected == 0 means the row is missing or already
// decided; the caller tells those apart.
func (r *SubmissionRepository) Decide(ctx context.Context, submissionID string, to domain.Status, decidedAt time.Time, comments *string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("submission_id = ? AND status = ?", submissionID, domain.StatusSubmitted).
		Updates(map[string]any{
			"status":             to,
			"decided_at":         decidedAt,
			"regulator_comments": comments,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
