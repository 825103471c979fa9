package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"solvency-backend/internal/domain/notification"
	"solvency-backend/pkg/id"
)

// StoreSink persists each event as a notification row for the
// regulator's inbox listing.
type StoreSink struct {
	repo        notification.Repository
	recipientID string
}

func NewStoreSink(repo notification.Repository, recipientID string) *StoreSink {
	return &StoreSink{repo: repo, recipientID: recipientID}
}

func (s *StoreSink) Deliver(ctx context.Context, ev Event) error {
	n := &notification.Notification{
		NotificationID: id.NewID32(),
		RecipientID:    s.recipientID,
		SubmissionID:   ev.SubmissionID,
		Kind:           kindFor(ev.Kind),
		Message:        messageFor(ev),
		Urgency:        urgencyFor(ev.Kind),
		SentAt:         ev.OccurredAt,
	}
	return s.repo.Create(ctx, n)
}

func kindFor(k Kind) notification.Kind {
	switch k {
	case KindApproved:
		return notification.KindApproved
	case KindRejected:
		return notification.KindRejected
	default:
		return notification.KindNewSubmission
	}
}

func urgencyFor(k Kind) notification.Urgency {
	switch k {
	case KindRejected:
		return notification.UrgencyHigh
	case KindApproved:
		return notification.UrgencyLow
	default:
		return notification.UrgencyMedium
	}
}

func messageFor(ev Event) string {
	switch ev.Kind {
	case KindApproved:
		return fmt.Sprintf("Submission %s from insurer %s approved", ev.SubmissionID, ev.InsurerID)
	case KindRejected:
		return fmt.Sprintf("Submission %s from insurer %s rejected", ev.SubmissionID, ev.InsurerID)
	default:
		ratio := "n/a"
		if !ev.SolvencyRatio.Infinite() {
			ratio = fmt.Sprintf("%.2f", float64(ev.SolvencyRatio))
		}
		return fmt.Sprintf("New submission %s from insurer %s (%s, solvency %s) awaiting review. Hash %s",
			ev.SubmissionID, ev.InsurerID, ev.Verdict, ratio, shortHash(ev.DataHash))
	}
}

func shortHash(h string) string {
	if len(h) <= 8 {
		return h
	}
	return h[:8] + "..."
}

// RedisSink publishes events on a pub/sub channel for any live UI or
// downstream consumer.
type RedisSink struct {
	rdb     *redis.Client
	channel string
}

func NewRedisSink(rdb *redis.Client, channel string) *RedisSink {
	return &RedisSink{rdb: rdb, channel: channel}
}

func (s *RedisSink) Deliver(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.rdb.Publish(ctx, s.channel, payload).Err()
}
