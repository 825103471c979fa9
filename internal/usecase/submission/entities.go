package submission

import (
	"time"

	domain "solvency-backend/internal/domain/submission"
)

type CreateInput struct {
	InsurerID      string
	CapitalKES     float64 // whole KES, at most 2 decimal places
	LiabilitiesKES float64
	SubmissionDate time.Time // date-only; stored as UTC calendar day
}

type ListInput struct {
	InsurerID string
	Status    *domain.Status
}

// SubmissionDTO is the wire shape; field names follow the public API.
type SubmissionDTO struct {
	ID                string       `json:"id"`
	InsurerID         string       `json:"insurerId"`
	Capital           float64      `json:"capital"`
	Liabilities       float64      `json:"liabilities"`
	SolvencyRatio     domain.Ratio `json:"solvencyRatio"`
	ComplianceVerdict string       `json:"complianceVerdict"`
	Status            string       `json:"status"`
	DataHash          string       `json:"dataHash"`
	SubmissionDate    string       `json:"submissionDate"`
	SubmittedAt       time.Time    `json:"submittedAt"`
	DecidedAt         *time.Time   `json:"decidedAt,omitempty"`
	RegulatorComments *string      `json:"regulatorComments,omitempty"`
}

type VerifyDTO struct {
	ID       string `json:"id"`
	DataHash string `json:"dataHash"`
	Verified bool   `json:"verified"`
}

func toDTO(s *domain.Submission) *SubmissionDTO {
	return &SubmissionDTO{
		ID:                s.SubmissionID,
		InsurerID:         s.InsurerID,
		Capital:           s.CapitalKES(),
		Liabilities:       s.LiabilitiesKES(),
		SolvencyRatio:     s.SolvencyRatio,
		ComplianceVerdict: string(s.ComplianceVerdict),
		Status:            string(s.Status),
		DataHash:          s.DataHash,
		SubmissionDate:    s.SubmissionDate.UTC().Format("2006-01-02"),
		SubmittedAt:       s.SubmittedAt,
		DecidedAt:         s.DecidedAt,
		RegulatorComments: s.RegulatorComments,
	}
}
