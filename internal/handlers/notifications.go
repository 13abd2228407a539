package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/services"
)

// NotificationProvider defines the interface that the notifications service must implement.
type NotificationProvider interface {
	ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	MarkRead(ctx context.Context, id int64) (*models.NotificationDB, error)
}

// MarkReadRequest represents the JSON body for the mark-read transition
// swagger:model MarkReadRequest
type MarkReadRequest struct {
	// required: true
	ID *int64 `json:"id"`
}

// NewNotificationsHandler returns the HTTP handler for the notifications resource.
// @Summary Notifications resource
// @Description GET the 50 newest notifications for a recipient, PUT to mark one read. Mark-read is idempotent and does no ownership check.
// @Tags notifications
// @Accept json
// @Produce json
// @Param user_id query int true "Recipient id"
// @Success 200 {array} models.NotificationDB
// @Failure 404 {object} handlers.ErrorResponse "Notification not found"
// @Router /api [get]
func NewNotificationsHandler(svc NotificationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			userID, ok := int64QueryParam(r, "user_id")
			if !ok {
				writeError(w, http.StatusBadRequest, "user_id is required")
				return
			}
			notifications, err := svc.ListByUser(r.Context(), userID)
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, notifications)

		case http.MethodPut:
			var req MarkReadRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "Notification ID is required")
				return
			}
			if req.ID == nil {
				writeError(w, http.StatusBadRequest, "Notification ID is required")
				return
			}

			notification, err := svc.MarkRead(r.Context(), *req.ID)
			if err != nil {
				if errors.Is(err, services.ErrNotificationNotFound) {
					writeError(w, http.StatusNotFound, "Notification not found")
					return
				}
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, notification)

		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}
