package submissionmock

import (
	"context"
	"time"

	domain "solvency-backend/internal/domain/submission"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, s *domain.Submission) error
	GetBySubmissionIDFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	ListByInsurerFn     func(ctx context.Context, insurerID string) ([]domain.Submission, error)
	ListByStatusFn      func(ctx context.Context, st domain.Status) ([]domain.Submission, error)
	ListPendingFn       func(ctx context.Context) ([]domain.Submission, error)
	ListFn              func(ctx context.Context) ([]domain.Submission, error)
	DecideFn            func(ctx context.Context, submissionID string, to domain.Status, decidedAt time.Time, comments *string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByInsurer(ctx context.Context, insurerID string) ([]domain.Submission, error) {
	if m.ListByInsurerFn != nil {
		return m.ListByInsurerFn(ctx, insurerID)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, st domain.Status) ([]domain.Submission, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, st)
	}
	return nil, nil
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.Submission, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Submission, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Decide(ctx context.Context, submissionID string, to domain.Status, decidedAt time.Time, comments *string) (bool, error) {
	if m.DecideFn != nil {
		return m.DecideFn(ctx, submissionID, to, decidedAt, comments)
	}
	return false, context.Canceled
}
