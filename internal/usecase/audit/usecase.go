package audit

import (
	"context"
	"time"

	domain "solvency-backend/internal/domain/audit"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type EventDTO struct {
	SubmissionID string    `json:"submissionId"`
	DataHash     string    `json:"dataHash"`
	Kind         string    `json:"kind"`
	Comments     *string   `json:"comments,omitempty"`
	RecordedAt   time.Time `json:"recordedAt"`
}

// List returns the trail most recent first, optionally scoped to one
// submission.
func (u *Usecase) List(ctx context.Context, submissionID string) ([]EventDTO, error) {
	var (
		rows []domain.Event
		err  error
	)
	if submissionID != "" {
		rows, err = u.repo.ListBySubmission(ctx, submissionID)
	} else {
		rows, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]EventDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, EventDTO{
			SubmissionID: e.SubmissionID,
			DataHash:     e.DataHash,
			Kind:         string(e.Kind),
			Comments:     e.Comments,
			RecordedAt:   e.RecordedAt,
		})
	}
	return out, nil
}
