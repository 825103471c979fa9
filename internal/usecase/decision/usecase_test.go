package decision

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	auditDomain "solvency-backend/internal/domain/audit"
	domain "solvency-backend/internal/domain/submission"
	"solvency-backend/internal/domain/uow"
	"solvency-backend/internal/testutil/auditmock"
	"solvency-backend/internal/testutil/notifymock"
	"solvency-backend/internal/testutil/submissionmock"
	"solvency-backend/internal/testutil/uowmock"
)

func pendingSubmission() *domain.Submission {
	return &domain.Submission{
		ID:           7,
		SubmissionID: "sub-1",
		InsurerID:    "ins-1",
		DataHash:     "hash-1",
		Status:       domain.StatusSubmitted,
	}
}

func TestApprove_HappyPath(t *testing.T) {
	row := pendingSubmission()
	var appended *auditDomain.Event

	subs := &submissionmock.Repo{
		DecideFn: func(ctx context.Context, id string, to domain.Status, decidedAt time.Time, comments *string) (bool, error) {
			if id != "sub-1" || to != domain.StatusApproved {
				t.Fatalf("Decide(%s, %s)", id, to)
			}
			if comments == nil || *comments != "ok" {
				t.Fatalf("comments = %v", comments)
			}
			row.Status = to
			row.DecidedAt = &decidedAt
			row.RegulatorComments = comments
			return true, nil
		},
		GetBySubmissionIDFn: func(context.Context, string) (*domain.Submission, error) {
			return row, nil
		},
	}
	audits := &auditmock.Repo{
		AppendFn: func(ctx context.Context, e *auditDomain.Event) error {
			appended = e
			return nil
		},
	}
	rec := &notifymock.Recorder{}
	u := NewUsecase(&uowmock.UoW{Repos: uow.Repos{Submissions: subs, Audits: audits}}, rec)

	dto, err := u.Approve(context.Background(), DecideInput{SubmissionID: "sub-1", Comments: "ok"})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if dto.Status != "Approved" || dto.ID != "sub-1" {
		t.Fatalf("dto = %+v", dto)
	}
	if dto.DecidedAt.IsZero() {
		t.Fatal("decidedAt not set")
	}
	if appended == nil || appended.Kind != auditDomain.KindApproved || appended.DataHash != "hash-1" {
		t.Fatalf("audit event = %+v", appended)
	}
	events := rec.Events()
	if len(events) != 1 || events[0].Kind != "Approved" {
		t.Fatalf("notifications = %+v", events)
	}
}

func TestReject_HappyPath(t *testing.T) {
	row := pendingSubmission()
	subs := &submissionmock.Repo{
		DecideFn: func(ctx context.Context, id string, to domain.Status, decidedAt time.Time, comments *string) (bool, error) {
			if to != domain.StatusRejected {
				t.Fatalf("to = %s", to)
			}
			if comments != nil {
				t.Fatalf("empty comments should stay nil, got %q", *comments)
			}
			row.Status = to
			return true, nil
		},
		GetBySubmissionIDFn: func(context.Context, string) (*domain.Submission, error) {
			return row, nil
		},
	}
	rec := &notifymock.Recorder{}
	u := NewUsecase(&uowmock.UoW{Repos: uow.Repos{Submissions: subs, Audits: &auditmock.Repo{}}}, rec)

	dto, err := u.Reject(context.Background(), DecideInput{SubmissionID: "sub-1"})
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if dto.Status != "Rejected" {
		t.Fatalf("status = %s", dto.Status)
	}
	if ev := rec.Events(); len(ev) != 1 || ev[0].Kind != "Rejected" {
		t.Fatalf("notifications = %+v", ev)
	}
}

func TestDecide_NotFound(t *testing.T) {
	subs := &submissionmock.Repo{
		DecideFn: func(context.Context, string, domain.Status, time.Time, *string) (bool, error) {
			return false, nil
		},
		GetBySubmissionIDFn: func(context.Context, string) (*domain.Submission, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	rec := &notifymock.Recorder{}
	u := NewUsecase(&uowmock.UoW{Repos: uow.Repos{Submissions: subs, Audits: &auditmock.Repo{}}}, rec)

	_, err := u.Approve(context.Background(), DecideInput{SubmissionID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(rec.Events()) != 0 {
		t.Fatal("notification dispatched on failure")
	}
}

func TestDecide_AlreadyDecided(t *testing.T) {
	decidedAt := time.Now().UTC()
	subs := &submissionmock.Repo{
		DecideFn: func(context.Context, string, domain.Status, time.Time, *string) (bool, error) {
			return false, nil
		},
		GetBySubmissionIDFn: func(context.Context, string) (*domain.Submission, error) {
			return &domain.Submission{SubmissionID: "sub-1", Status: domain.StatusApproved, DecidedAt: &decidedAt}, nil
		},
	}
	u := NewUsecase(&uowmock.UoW{Repos: uow.Repos{Submissions: subs, Audits: &auditmock.Repo{}}}, &notifymock.Recorder{})

	// Approving twice, or rejecting after approval, both refuse.
	if _, err := u.Approve(context.Background(), DecideInput{SubmissionID: "sub-1"}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("second approve err = %v, want ErrInvalidTransition", err)
	}
	if _, err := u.Reject(context.Background(), DecideInput{SubmissionID: "sub-1"}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("reject after approve err = %v, want ErrInvalidTransition", err)
	}
}

func TestDecide_MissingID(t *testing.T) {
	u := NewUsecase(&uowmock.UoW{}, &notifymock.Recorder{})
	_, err := u.Approve(context.Background(), DecideInput{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

// Concurrent approve and reject on the same fresh submission: the store
// CAS admits exactly one writer, so one call wins and the other sees
// ErrInvalidTransition.
func TestDecide_ConcurrentRace(t *testing.T) {
	row := pendingSubmission()
	var mu sync.Mutex
	var decided int32

	subs := &submissionmock.Repo{
		DecideFn: func(ctx context.Context, id string, to domain.Status, decidedAt time.Time, comments *string) (bool, error) {
			if !atomic.CompareAndSwapInt32(&decided, 0, 1) {
				return false, nil
			}
			mu.Lock()
			row.Status = to
			row.DecidedAt = &decidedAt
			mu.Unlock()
			return true, nil
		},
		GetBySubmissionIDFn: func(context.Context, string) (*domain.Submission, error) {
			mu.Lock()
			defer mu.Unlock()
			cp := *row
			return &cp, nil
		},
	}
	rec := &notifymock.Recorder{}
	u := NewUsecase(&uowmock.UoW{Repos: uow.Repos{Submissions: subs, Audits: &auditmock.Repo{}}}, rec)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := u.Approve(context.Background(), DecideInput{SubmissionID: "sub-1"})
		errs <- err
	}()
	go func() {
		defer wg.Done()
		_, err := u.Reject(context.Background(), DecideInput{SubmissionID: "sub-1"})
		errs <- err
	}()
	wg.Wait()
	close(errs)

	var wins, losses int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrInvalidTransition):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("wins=%d losses=%d, want exactly one of each", wins, losses)
	}
	if got := rec.Events(); len(got) != 1 {
		t.Fatalf("notifications = %d, want 1 (winner only)", len(got))
	}
}
