package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// MarkAsRead flags a notification as read. Marking an already read
// notification succeeds without change.
func (s *Service) MarkAsRead(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkAsRead: %w", err)
	}

	s.log.DebugContext(ctx, "notification read", slog.Int64("notification_id", id))
	return &n, nil
}

// ListUnread returns unread notifications, newest first.
func (s *Service) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.ListUnread(ctx)
}

// ListByUser returns the user's notifications, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user_id", "must be positive")
	}
	return s.notifications.ListByUser(ctx, userID)
}

// CountUnread returns the number of unread notifications.
func (s *Service) CountUnread(ctx context.Context) (int, error) {
	return s.notifications.CountUnread(ctx)
}
