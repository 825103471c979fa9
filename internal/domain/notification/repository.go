package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// Most recent first (sent_at DESC, id DESC).
	ListByRecipient(ctx context.Context, recipientID string) ([]Notification, error)
}
