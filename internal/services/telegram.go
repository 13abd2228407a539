package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// TelegramSender sends messages through the Telegram Bot API.
type TelegramSender interface {
	SendMessage(ctx context.Context, chatID, text, parseMode string) (map[string]any, error)
}

// TelegramService relays notifications to Telegram and answers bot webhook
// updates.
type TelegramService struct {
	sender TelegramSender
}

// NewTelegramService creates a new TelegramService instance.
func NewTelegramService(sender TelegramSender) *TelegramService {
	return &TelegramService{sender: sender}
}

// Relay forwards a message to the given chat.
func (svc *TelegramService) Relay(ctx context.Context, chatID, message, parseMode string) (map[string]any, error) {
	result, err := svc.sender.SendMessage(ctx, chatID, message, parseMode)
	if err != nil {
		logger.Log.Errorw("failed to relay telegram message", "chat_id", chatID, "err", err)
		return nil, err
	}
	return result, nil
}

// HandleUpdate processes a bot webhook update. /start is answered with the
// sender's chat id so users can wire it into their notification settings;
// everything else is ignored.
func (svc *TelegramService) HandleUpdate(ctx context.Context, update models.TelegramUpdate) error {
	if update.Message == nil {
		return nil
	}

	if update.Message.Text != "/start" {
		return nil
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	reply := fmt.Sprintf(
		"👋 <b>Привет!</b>\n\n"+
			"Ваш Chat ID для подключения уведомлений:\n\n"+
			"<code>%s</code>\n\n"+
			"📋 Нажмите на номер, чтобы скопировать\n\n"+
			"Вставьте этот ID в настройках уведомлений на платформе Vozduh.",
		chatID,
	)

	if _, err := svc.sender.SendMessage(ctx, chatID, reply, "HTML"); err != nil {
		logger.Log.Errorw("failed to answer /start", "chat_id", chatID, "err", err)
		return err
	}
	return nil
}
