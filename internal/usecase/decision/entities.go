package decision

import "time"

type DecideInput struct {
	SubmissionID string
	Comments     string // optional regulator note
}

type DecisionDTO struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	DecidedAt time.Time `json:"decidedAt"`
}
