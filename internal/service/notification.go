package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

const (
	winMessage  = "🎉 Победа! Промокод выдан: <b>%s</b>"
	loseMessage = "😔 Проигрыш"
)

// NotificationService delivers game outcomes on a best-effort basis: failures are logged, never returned.
type NotificationService interface {
	NotifyWin(ctx context.Context, address, promoCode string)
	NotifyLose(ctx context.Context, address string)
}

// Channel delivers a text to an address.
type Channel interface {
	Send(ctx context.Context, address, text string, html bool) error
}

type notificationService struct {
	logger *slog.Logger

	channel        Channel
	defaultAddress string
	timeout        time.Duration
}

func NewNotificationService(logger *slog.Logger, channel Channel, defaultAddress string, timeout time.Duration) NotificationService {
	return &notificationService{
		logger:         logger,
		channel:        channel,
		defaultAddress: defaultAddress,
		timeout:        timeout,
	}
}

func (that *notificationService) NotifyWin(ctx context.Context, address, promoCode string) {
	log := that.logger.With("method", "NotifyWin", "code", promoCode)

	that.deliver(ctx, log, address, fmt.Sprintf(winMessage, promoCode), true)
}

func (that *notificationService) NotifyLose(ctx context.Context, address string) {
	log := that.logger.With("method", "NotifyLose")

	that.deliver(ctx, log, address, loseMessage, false)
}

func (that *notificationService) deliver(ctx context.Context, log *slog.Logger, address, text string, html bool) {
	target := address
	if target == "" {
		target = that.defaultAddress
	}

	if target == "" {
		log.Info("notification skipped: no address")
		return
	}

	log = log.With("address", target)

	// the caller's request may already be finished; delivery gets its own deadline
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), that.timeout)
	defer cancel()

	if err := that.channel.Send(sendCtx, target, text, html); err != nil {
		log.Error("failed to deliver notification", "error", fmt.Errorf("%w: %w", apperror.ErrNotificationDelivery, err))
		return
	}

	log.Info("notification sent")
}
