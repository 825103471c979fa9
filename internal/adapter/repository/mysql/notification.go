package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "solvency-backend/internal/domain/notification"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	var out []domain.Notification
	res := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("sent_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
