package models

// TelegramChat is the chat part of a Telegram webhook update
type TelegramChat struct {
	ID int64 `json:"id"`
}

// TelegramMessage is the message part of a Telegram webhook update
type TelegramMessage struct {
	Chat TelegramChat `json:"chat"`
	Text string       `json:"text"`
}

// TelegramUpdate is an incoming Telegram webhook update. Only the fields the
// bot reacts to are modeled.
type TelegramUpdate struct {
	Message *TelegramMessage `json:"message"`
}
