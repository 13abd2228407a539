package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// MessageRelay defines the interface that the telegram service must implement.
type MessageRelay interface {
	Relay(ctx context.Context, chatID, message, parseMode string) (map[string]any, error)
}

// UpdateHandler processes incoming Telegram webhook updates.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update models.TelegramUpdate) error
}

// RelayResponse wraps a successful Telegram API call
// swagger:model RelayResponse
type RelayResponse struct {
	Success bool           `json:"success"`
	Result  map[string]any `json:"result"`
}

// NewTelegramSendHandler returns the HTTP handler for the notification relay.
// @Summary Telegram notification relay
// @Description Forwards a message to the given chat via the Telegram Bot API.
// @Tags telegram
// @Accept json
// @Produce json
// @Success 200 {object} handlers.RelayResponse
// @Failure 400 {object} handlers.ErrorResponse "chat_id and message are required"
// @Router /telegram/send [post]
func NewTelegramSendHandler(svc MessageRelay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var body map[string]any
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		if err := decoder.Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "chat_id and message are required")
			return
		}

		chatID := stringValue(body["chat_id"])
		message := stringValue(body["message"])
		parseMode := stringValue(body["parse_mode"])
		if chatID == "" || message == "" {
			writeError(w, http.StatusBadRequest, "chat_id and message are required")
			return
		}

		result, err := svc.Relay(r.Context(), chatID, message, parseMode)
		if err != nil {
			logger.Log.Errorw("telegram relay failed", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, RelayResponse{Success: true, Result: result})
	}
}

// NewTelegramWebhookHandler returns the HTTP handler for the bot webhook.
// The webhook always acknowledges updates it ignores so Telegram does not
// retry them.
// @Summary Telegram bot webhook
// @Description Answers /start with the sender's chat id; acknowledges everything else.
// @Tags telegram
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /telegram/webhook [post]
func NewTelegramWebhookHandler(svc UpdateHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var update models.TelegramUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if err := svc.HandleUpdate(r.Context(), update); err != nil {
			logger.Log.Errorw("webhook update failed", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// stringValue renders a JSON scalar as a string; chat ids arrive both quoted
// and unquoted.
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
