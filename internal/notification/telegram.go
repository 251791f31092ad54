package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateFormat = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRequestCreated(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Request submitted*\n\nEvent: %s\nDate (UTC): %s\nYour request is waiting for the organizer's decision.",
		event.Title, event.EventDate.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestConfirmed(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Request confirmed!*\n\nEvent: %s\nDate (UTC): %s",
		event.Title, event.EventDate.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestRejected(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Request rejected*\n\nEvent: %s\nDate (UTC): %s",
		event.Title, event.EventDate.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestCanceled(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Request canceled*\n\nEvent: %s\nDate (UTC): %s",
		event.Title, event.EventDate.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
