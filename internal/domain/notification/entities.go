package notification

import "time"

type Kind string

const (
	KindNewSubmission Kind = "NewSubmission"
	KindApproved      Kind = "Approved"
	KindRejected      Kind = "Rejected"
)

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// Notification is a regulator-facing alert row. Written best-effort by
// the dispatcher, outside the transaction that moves the submission.
type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	NotificationID string    `gorm:"column:notification_id;type:char(32);not null;uniqueIndex:ux_notifications_notification_id"`
	RecipientID    string    `gorm:"column:recipient_id;size:32;not null;index:idx_notifications_recipient"`
	SubmissionID   string    `gorm:"column:submission_id;size:32;not null;index"`
	Kind           Kind      `gorm:"column:kind;type:enum('NewSubmission','Approved','Rejected');not null"`
	Message        string    `gorm:"column:message;type:text;not null"`
	Urgency        Urgency   `gorm:"column:urgency;type:enum('Low','Medium','High');not null"`
	SentAt         time.Time `gorm:"column:sent_at;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }
