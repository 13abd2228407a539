package services

import (
	"context"
	"errors"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// Error variables
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationReader defines read-only operations for notifications.
type NotificationReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error)
}

// NotificationMarker flips the read flag on a notification.
type NotificationMarker interface {
	MarkRead(ctx context.Context, id int64) (*models.NotificationDB, error)
}

// NotificationsService handles notification listing and the single
// mark-read transition.
type NotificationsService struct {
	reader NotificationReader
	marker NotificationMarker
}

// NewNotificationsService creates a new NotificationsService instance.
func NewNotificationsService(reader NotificationReader, marker NotificationMarker) *NotificationsService {
	return &NotificationsService{reader: reader, marker: marker}
}

// ListByUser returns up to 50 most recent notifications for the recipient.
func (svc *NotificationsService) ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	notifications, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "user_id", userID, "err", err)
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets is_read unconditionally and returns the updated row. The
// transition is idempotent.
func (svc *NotificationsService) MarkRead(ctx context.Context, id int64) (*models.NotificationDB, error) {
	notification, err := svc.marker.MarkRead(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to mark notification read", "id", id, "err", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}
