package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

// MessageSender is the part of *tgbotapi.BotAPI used to push messages.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramChannel struct {
	api MessageSender
}

// NewTelegramChannel sends to a numeric chat ID or an @channel username.
func NewTelegramChannel(api MessageSender) Channel {
	return &telegramChannel{
		api: api,
	}
}

func (that *telegramChannel) Send(ctx context.Context, address, text string, html bool) error {
	msg, err := newTelegramMessage(address, text)
	if err != nil {
		return err
	}

	if html {
		msg.ParseMode = tgbotapi.ModeHTML
	}

	errCh := make(chan error, 1)
	go func() {
		_, sendErr := that.api.Send(msg)
		errCh <- sendErr
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("telegram send aborted: %w", ctx.Err())
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("telegram send failed: %w", err)
		}
		return nil
	}
}

func newTelegramMessage(address, text string) (tgbotapi.MessageConfig, error) {
	if strings.HasPrefix(address, "@") {
		return tgbotapi.NewMessageToChannel(address, text), nil
	}

	chatID, err := strconv.ParseInt(address, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("%w: invalid chat id %q", apperror.ErrNotificationDelivery, address)
	}

	return tgbotapi.NewMessage(chatID, text), nil
}

type logChannel struct {
	logger *slog.Logger
}

// NewLogChannel only logs; it is used when no bot token is configured.
func NewLogChannel(logger *slog.Logger) Channel {
	return &logChannel{
		logger: logger,
	}
}

func (that *logChannel) Send(_ context.Context, address, text string, _ bool) error {
	that.logger.Info("notification", "address", address, "text", text)

	return nil
}
