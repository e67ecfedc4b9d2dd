package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

type notificationService interface {
	ListUnread(ctx context.Context) ([]domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	CountUnread(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, id int64) (*domain.Notification, error)
}

// NotificationHandler serves /api/notifications. Every route is admin-only.
type NotificationHandler struct {
	notifications notificationService
	log           *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notifications notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, log: logger.With("handler", "notification")}
}

// Unread handles GET /api/notifications/unread.
func (h *NotificationHandler) Unread(w http.ResponseWriter, r *http.Request) {
	ns, err := h.notifications.ListUnread(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponses(ns))
}

// ByUser handles GET /api/notifications/user/{userId}.
func (h *NotificationHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ns, err := h.notifications.ListByUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponses(ns))
}

// UnreadCount handles GET /api/notifications/unread/count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.CountUnread(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// MarkRead handles PATCH /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := h.notifications.MarkAsRead(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(*n))
}
