package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vozduh-dev/invest-api/internal/logger"
)

// TelegramFacade calls the Telegram Bot API over HTTP.
type TelegramFacade struct {
	client *resty.Client
	token  string
}

// NewTelegramFacade creates a facade for the given bot token. An empty
// baseURL defaults to the public Bot API host.
func NewTelegramFacade(token, baseURL string) *TelegramFacade {
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	client.AddRetryCondition(retryCondition)

	return &TelegramFacade{client: client, token: token}
}

// retryCondition determines if an outbound request should be retried
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage posts a sendMessage call and returns the decoded API response.
func (f *TelegramFacade) SendMessage(ctx context.Context, chatID, text, parseMode string) (map[string]any, error) {
	if f.token == "" {
		return nil, fmt.Errorf("telegram bot token not configured")
	}
	if parseMode == "" {
		parseMode = "HTML"
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode}).
		Post(fmt.Sprintf("/bot%s/sendMessage", f.token))
	if err != nil {
		logger.Log.Errorw("telegram sendMessage request failed", "chat_id", chatID, "error", err)
		return nil, err
	}

	if resp.IsError() {
		err := fmt.Errorf("telegram API error: %s", resp.String())
		logger.Log.Errorw("telegram sendMessage rejected", "chat_id", chatID, "status", resp.StatusCode(), "error", err)
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}

	return result, nil
}
