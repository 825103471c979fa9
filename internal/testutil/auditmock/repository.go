package auditmock

import (
	"context"

	domain "solvency-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn           func(ctx context.Context, e *domain.Event) error
	ListBySubmissionFn func(ctx context.Context, submissionID string) ([]domain.Event, error)
	ListFn             func(ctx context.Context) ([]domain.Event, error)
}

func (m *Repo) Append(ctx context.Context, e *domain.Event) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListBySubmission(ctx context.Context, submissionID string) ([]domain.Event, error) {
	if m.ListBySubmissionFn != nil {
		return m.ListBySubmissionFn(ctx, submissionID)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Event, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
