package domain

import "time"

// User is both a potential event initiator and a requester. TelegramChatID
// is optional; without it the user simply receives no notifications.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	TelegramChatID *int64
}
