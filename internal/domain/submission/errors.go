package submission

import "errors"

var (
	ErrNotFound = errors.New("submission not found")
	// ErrInvalidTransition covers any attempt to decide a submission that
	// is no longer awaiting review, including the loser of a concurrent
	// double-decision. A decision, once made, is final.
	ErrInvalidTransition = errors.New("submission already decided")
)

// ValidationError reports a malformed or missing financial input.
// Always recoverable by the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + " " + e.Reason }
