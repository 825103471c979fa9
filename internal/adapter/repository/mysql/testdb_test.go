package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"solvency-backend/internal/domain/submission"
	"solvency-backend/pkg/id"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type submissionSQLite struct {
	ID                uint64           `gorm:"primaryKey;column:id"`
	SubmissionID      string           `gorm:"size:32;column:submission_id"`
	InsurerID         string           `gorm:"size:32;column:insurer_id"`
	CapitalCents      int64            `gorm:"column:capital_cents"`
	LiabilitiesCents  int64            `gorm:"column:liabilities_cents"`
	SolvencyRatio     submission.Ratio `gorm:"column:solvency_ratio"`
	ComplianceVerdict string           `gorm:"type:text;column:compliance_verdict"`
	Status            string           `gorm:"type:text;column:status"`
	DataHash          string           `gorm:"size:64;column:data_hash"`
	SubmissionDate    time.Time        `gorm:"column:submission_date"`
	SubmittedAt       time.Time        `gorm:"column:submitted_at"`
	DecidedAt         *time.Time       `gorm:"column:decided_at"`
	RegulatorComments *string          `gorm:"column:regulator_comments"`
	CreatedAt         time.Time        `gorm:"column:created_at"`
	UpdatedAt         time.Time        `gorm:"column:updated_at"`
}

func (submissionSQLite) TableName() string { return "submissions" }

type notificationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	NotificationID string    `gorm:"size:32;column:notification_id"`
	RecipientID    string    `gorm:"size:32;column:recipient_id"`
	SubmissionID   string    `gorm:"size:32;column:submission_id"`
	Kind           string    `gorm:"type:text;column:kind"`
	Message        string    `gorm:"type:text;column:message"`
	Urgency        string    `gorm:"type:text;column:urgency"`
	SentAt         time.Time `gorm:"column:sent_at"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

type auditEventSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	SubmissionID string    `gorm:"size:32;column:submission_id"`
	DataHash     string    `gorm:"size:64;column:data_hash"`
	Kind         string    `gorm:"type:text;column:kind"`
	Comments     *string   `gorm:"column:comments"`
	RecordedAt   time.Time `gorm:"column:recorded_at"`
}

func (auditEventSQLite) TableName() string { return "audit_events" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&submissionSQLite{}, &notificationSQLite{}, &auditEventSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeSubmission(insurerID string, submittedAt time.Time) *submission.Submission {
	return &submission.Submission{
		SubmissionID:      id.NewID32(),
		InsurerID:         insurerID,
		CapitalCents:      60_000_000_000,
		LiabilitiesCents:  40_000_000_000,
		SolvencyRatio:     1.5,
		ComplianceVerdict: submission.VerdictCompliant,
		Status:            submission.StatusSubmitted,
		DataHash:          id.NewID32() + id.NewID32(),
		SubmissionDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		SubmittedAt:       submittedAt,
	}
}
