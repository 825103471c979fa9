package audit

import "context"

type Repository interface {
	Append(ctx context.Context, e *Event) error

	// Most recent first (recorded_at DESC, id DESC).
	ListBySubmission(ctx context.Context, submissionID string) ([]Event, error)
	List(ctx context.Context) ([]Event, error)
}
