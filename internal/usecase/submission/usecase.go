package submission

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"solvency-backend/internal/compliance"
	"solvency-backend/internal/domain/audit"
	domain "solvency-backend/internal/domain/submission"
	"solvency-backend/internal/domain/uow"
	"solvency-backend/internal/notify"
	"solvency-backend/pkg/fingerprint"
	"solvency-backend/pkg/id"
)

// Notifier is satisfied by notify.Dispatcher; fire-and-forget.
type Notifier interface {
	Dispatch(ev notify.Event)
}

type Usecase struct {
	repo     domain.Repository
	uow      uow.UnitOfWork
	eval     *compliance.Evaluator
	notifier Notifier
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, eval *compliance.Evaluator, n Notifier) *Usecase {
	return &Usecase{repo: repo, uow: tx, eval: eval, notifier: n}
}

// MaxAmountKES caps amounts so the cents conversion stays inside
// int64; beyond it the float->int64 conversion wraps negative.
const MaxAmountKES = 9e16

// centsFromKES converts a 2-decimal KES amount to minor units exactly.
// Callers bound the input by MaxAmountKES first.
func centsFromKES(v float64) int64 { return int64(math.Round(v * 100)) }

func (in CreateInput) validate() error {
	if in.InsurerID == "" || len(in.InsurerID) != 32 {
		return &domain.ValidationError{Field: "insurerId", Reason: "must be a 32-char id"}
	}
	if in.CapitalKES < 0 || math.IsNaN(in.CapitalKES) || math.IsInf(in.CapitalKES, 0) {
		return &domain.ValidationError{Field: "capital", Reason: "must be a non-negative amount"}
	}
	if in.CapitalKES > MaxAmountKES {
		return &domain.ValidationError{Field: "capital", Reason: "exceeds the supported amount range"}
	}
	if in.LiabilitiesKES < 0 || math.IsNaN(in.LiabilitiesKES) || math.IsInf(in.LiabilitiesKES, 0) {
		return &domain.ValidationError{Field: "liabilities", Reason: "must be a non-negative amount"}
	}
	if in.LiabilitiesKES > MaxAmountKES {
		return &domain.ValidationError{Field: "liabilities", Reason: "exceeds the supported amount range"}
	}
	if in.SubmissionDate.IsZero() {
		return &domain.ValidationError{Field: "submissionDate", Reason: "is required"}
	}
	return nil
}

// Create evaluates compliance, fingerprints the canonical payload and
// persists the record in Submitted, with its audit event in the same
// transaction. The new-submission alert is dispatched after commit.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*SubmissionDTO, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	capCents := centsFromKES(in.CapitalKES)
	liabCents := centsFromKES(in.LiabilitiesKES)
	res := u.eval.Evaluate(capCents, liabCents)

	day := in.SubmissionDate.UTC().Truncate(24 * time.Hour)
	now := time.Now().UTC()
	s := &domain.Submission{
		SubmissionID:      id.NewID32(),
		InsurerID:         in.InsurerID,
		CapitalCents:      capCents,
		LiabilitiesCents:  liabCents,
		SolvencyRatio:     res.Ratio,
		ComplianceVerdict: res.Verdict,
		Status:            domain.StatusSubmitted,
		DataHash: fingerprint.Sum(fingerprint.Payload{
			InsurerID:        in.InsurerID,
			CapitalCents:     capCents,
			LiabilitiesCents: liabCents,
			SubmissionDate:   day,
		}),
		SubmissionDate: day,
		SubmittedAt:    now,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Submissions.Create(ctx, s); err != nil {
			return err
		}
		return r.Audits.Append(ctx, &audit.Event{
			SubmissionID: s.SubmissionID,
			DataHash:     s.DataHash,
			Kind:         audit.KindSubmitted,
			RecordedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Dispatch(notify.Event{
		Kind:          notify.KindNewSubmission,
		SubmissionID:  s.SubmissionID,
		InsurerID:     s.InsurerID,
		DataHash:      s.DataHash,
		SolvencyRatio: s.SolvencyRatio,
		Verdict:       s.ComplianceVerdict,
		OccurredAt:    now,
	})
	return toDTO(s), nil
}

func (u *Usecase) Get(ctx context.Context, submissionID string) (*SubmissionDTO, error) {
	s, err := u.repo.GetBySubmissionID(ctx, submissionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]SubmissionDTO, error) {
	var (
		rows []domain.Submission
		err  error
	)
	switch {
	case in.InsurerID != "":
		rows, err = u.repo.ListByInsurer(ctx, in.InsurerID)
		if err == nil && in.Status != nil {
			filtered := rows[:0]
			for _, s := range rows {
				if s.Status == *in.Status {
					filtered = append(filtered, s)
				}
			}
			rows = filtered
		}
	case in.Status != nil:
		rows, err = u.repo.ListByStatus(ctx, *in.Status)
	default:
		rows, err = u.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]SubmissionDTO, error) {
	st := domain.StatusSubmitted
	return u.List(ctx, ListInput{Status: &st})
}

// Verify recomputes the fingerprint from the stored fields and compares
// it to the stored hash, exposing any post-hoc tampering with the row.
func (u *Usecase) Verify(ctx context.Context, submissionID string) (*VerifyDTO, error) {
	s, err := u.repo.GetBySubmissionID(ctx, submissionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	ok := fingerprint.Verify(fingerprint.Payload{
		InsurerID:        s.InsurerID,
		CapitalCents:     s.CapitalCents,
		LiabilitiesCents: s.LiabilitiesCents,
		SubmissionDate:   s.SubmissionDate,
	}, s.DataHash)
	return &VerifyDTO{ID: s.SubmissionID, DataHash: s.DataHash, Verified: ok}, nil
}
