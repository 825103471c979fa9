// Package decision is the regulator half of the lifecycle engine:
// moving a submission out of Submitted, exactly once.
package decision

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"solvency-backend/internal/domain/audit"
	domain "solvency-backend/internal/domain/submission"
	"solvency-backend/internal/domain/uow"
	"solvency-backend/internal/notify"
)

type Notifier interface {
	Dispatch(ev notify.Event)
}

type Usecase struct {
	uow      uow.UnitOfWork
	notifier Notifier
}

func NewUsecase(tx uow.UnitOfWork, n Notifier) *Usecase {
	return &Usecase{uow: tx, notifier: n}
}

func (u *Usecase) Approve(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	return u.decide(ctx, in, domain.StatusApproved)
}

func (u *Usecase) Reject(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	return u.decide(ctx, in, domain.StatusRejected)
}

// decide performs the compare-and-set transition Submitted -> to. Two
// regulators racing on the same row produce exactly one winner; the
// loser sees ErrInvalidTransition, never a silent overwrite. The audit
// event commits with the status flip; the alert goes out after commit.
func (u *Usecase) decide(ctx context.Context, in DecideInput, to domain.Status) (*DecisionDTO, error) {
	if in.SubmissionID == "" {
		return nil, &domain.ValidationError{Field: "id", Reason: "is required"}
	}

	var comments *string
	if in.Comments != "" {
		comments = &in.Comments
	}
	decidedAt := time.Now().UTC()

	var decided *domain.Submission
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		won, err := r.Submissions.Decide(ctx, in.SubmissionID, to, decidedAt, comments)
		if err != nil {
			return err
		}
		if !won {
			// Distinguish the 409 from the 404.
			_, err := r.Submissions.GetBySubmissionID(ctx, in.SubmissionID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			if err != nil {
				return err
			}
			return domain.ErrInvalidTransition
		}

		s, err := r.Submissions.GetBySubmissionID(ctx, in.SubmissionID)
		if err != nil {
			return err
		}
		decided = s

		kind := audit.KindApproved
		if to == domain.StatusRejected {
			kind = audit.KindRejected
		}
		return r.Audits.Append(ctx, &audit.Event{
			SubmissionID: s.SubmissionID,
			DataHash:     s.DataHash,
			Kind:         kind,
			Comments:     comments,
			RecordedAt:   decidedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	evKind := notify.KindApproved
	if to == domain.StatusRejected {
		evKind = notify.KindRejected
	}
	u.notifier.Dispatch(notify.Event{
		Kind:          evKind,
		SubmissionID:  decided.SubmissionID,
		InsurerID:     decided.InsurerID,
		DataHash:      decided.DataHash,
		SolvencyRatio: decided.SolvencyRatio,
		Verdict:       decided.ComplianceVerdict,
		OccurredAt:    decidedAt,
	})
	return &DecisionDTO{ID: decided.SubmissionID, Status: string(to), DecidedAt: decidedAt}, nil
}
