package uow

import (
	"context"

	"solvency-backend/internal/domain/audit"
	"solvency-backend/internal/domain/submission"
)

type Repos struct {
	Submissions submission.Repository
	Audits      audit.Repository
}

// UnitOfWork commits a submission write and its audit event together.
// Notifications stay outside on purpose: they are best-effort and must
// never roll back a transition.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
