package audit

import "time"

type Kind string

const (
	KindSubmitted Kind = "Submitted"
	KindApproved  Kind = "Approved"
	KindRejected  Kind = "Rejected"
)

// Event is one line of the tamper-evident trail: a submission appearing
// or a regulator disposing of it. Rows are append-only; the decision
// event commits in the same transaction as the status flip.
type Event struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	SubmissionID string    `gorm:"column:submission_id;size:32;not null;index:idx_audit_events_submission"`
	DataHash     string    `gorm:"column:data_hash;size:64;not null"`
	Kind         Kind      `gorm:"column:kind;type:enum('Submitted','Approved','Rejected');not null"`
	Comments     *string   `gorm:"column:comments;type:text"`
	RecordedAt   time.Time `gorm:"column:recorded_at;not null"`
}

func (Event) TableName() string { return "audit_events" }
