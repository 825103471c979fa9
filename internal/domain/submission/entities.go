package submission

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

type Status string

const (
	StatusSubmitted Status = "Submitted"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
)

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// ParseStatus maps a query/request value onto the closed status set.
// There is deliberately no substring or case-folding fallback.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusSubmitted, StatusApproved, StatusRejected:
		return Status(raw), nil
	}
	return "", &ValidationError{Field: "status", Reason: "must be one of Submitted, Approved, Rejected"}
}

type Verdict string

const (
	VerdictCompliant    Verdict = "Compliant"
	VerdictNonCompliant Verdict = "NonCompliant"
)

// Ratio is capital divided by liabilities. Zero liabilities yield +Inf,
// which neither a JSON number nor a DECIMAL column can carry, so the
// infinite case marshals and stores as NULL. The compliance verdict is
// computed from the integer amounts, never from this value.
type Ratio float64

func (r Ratio) Infinite() bool { return math.IsInf(float64(r), 1) }

func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Infinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r))
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Ratio(math.Inf(1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}

func (r Ratio) Value() (driver.Value, error) {
	if r.Infinite() {
		return nil, nil
	}
	return float64(r), nil
}

func (r *Ratio) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = Ratio(math.Inf(1))
	case float64:
		*r = Ratio(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return err
		}
		*r = Ratio(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*r = Ratio(f)
	default:
		return fmt.Errorf("solvency ratio: cannot scan %T", src)
	}
	return nil
}

// Submission is the append-only record of one periodic financial filing.
// Money is held in KES minor units (cents) so threshold and ratio guards
// are integer comparisons. DataHash, SolvencyRatio and ComplianceVerdict
// are fixed at creation and never recomputed; Status only moves forward.
type Submission struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	SubmissionID      string     `gorm:"column:submission_id;size:32;uniqueIndex:ux_submissions_submission_id"`
	InsurerID         string     `gorm:"column:insurer_id;size:32;index:idx_submissions_insurer"`
	CapitalCents      int64      `gorm:"column:capital_cents;not null"`
	LiabilitiesCents  int64      `gorm:"column:liabilities_cents;not null"`
	SolvencyRatio     Ratio      `gorm:"column:solvency_ratio;type:decimal(14,6)"`
	ComplianceVerdict Verdict    `gorm:"column:compliance_verdict;type:enum('Compliant','NonCompliant');not null"`
	Status            Status     `gorm:"column:status;type:enum('Submitted','Approved','Rejected');default:'Submitted';index:idx_submissions_status"`
	DataHash          string     `gorm:"column:data_hash;size:64;index:idx_submissions_data_hash"`
	SubmissionDate    time.Time  `gorm:"column:submission_date;type:date;not null"`
	SubmittedAt       time.Time  `gorm:"column:submitted_at;not null"`
	DecidedAt         *time.Time `gorm:"column:decided_at"`
	RegulatorComments *string    `gorm:"column:regulator_comments;type:text"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Submission) TableName() string { return "submissions" }

// CapitalKES and LiabilitiesKES convert back to whole-currency amounts
// for reporting payloads.
func (s *Submission) CapitalKES() float64     { return float64(s.CapitalCents) / 100 }
func (s *Submission) LiabilitiesKES() float64 { return float64(s.LiabilitiesCents) / 100 }
