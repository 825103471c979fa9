package notification

import (
	"context"
	"time"

	domain "solvency-backend/internal/domain/notification"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type NotificationDTO struct {
	ID           string    `json:"id"`
	SubmissionID string    `json:"submissionId"`
	Kind         string    `json:"kind"`
	Message      string    `json:"message"`
	Urgency      string    `json:"urgency"`
	SentAt       time.Time `json:"sentAt"`
}

func (u *Usecase) ListByRecipient(ctx context.Context, recipientID string) ([]NotificationDTO, error) {
	rows, err := u.repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	out := make([]NotificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, NotificationDTO{
			ID:           n.NotificationID,
			SubmissionID: n.SubmissionID,
			Kind:         string(n.Kind),
			Message:      n.Message,
			Urgency:      string(n.Urgency),
			SentAt:       n.SentAt,
		})
	}
	return out, nil
}
