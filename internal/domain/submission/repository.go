package submission

import (
	"context"
	"time"
)

// Repository lists are ordered most recent first: submitted_at DESC,
// ties broken by id DESC.
type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	ListByInsurer(ctx context.Context, insurerID string) ([]Submission, error)
	ListByStatus(ctx context.Context, st Status) ([]Submission, error)
	ListPending(ctx context.Context) ([]Submission, error)
	List(ctx context.Context) ([]Submission, error)

	// Decide flips status Submitted -> to, stamping decided_at and
	// comments, in a single compare-and-set. Returns false when the row
	// was not in Submitted (missing or already decided) so exactly one
	// of two racing deciders wins.
	Decide(ctx context.Context, submissionID string, to Status, decidedAt time.Time, comments *string) (bool, error)
}
