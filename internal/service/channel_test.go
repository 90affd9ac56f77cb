package service

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	mockedService "github.com/rocketscienceinc/tictactoe-promo/mocks/service"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

func TestTelegramChannel_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Numeric chat id with html", func(t *testing.T) {
		// Given: a sender that captures the message
		mockSender := mockedService.NewMockMessageSender(t)
		telegram := NewTelegramChannel(mockSender)

		var sent tgbotapi.MessageConfig
		mockSender.EXPECT().
			Send(mock.Anything).
			Run(func(c tgbotapi.Chattable) { sent = c.(tgbotapi.MessageConfig) }).
			Return(tgbotapi.Message{}, nil).
			Once()

		// When: Send is called
		err := telegram.Send(ctx, "-100123", "<b>hi</b>", true)

		// Then: the message targets the chat with html parse mode
		require.NoError(t, err)
		assert.Equal(t, int64(-100123), sent.ChatID)
		assert.Equal(t, "<b>hi</b>", sent.Text)
		assert.Equal(t, tgbotapi.ModeHTML, sent.ParseMode)
	})

	t.Run("Channel username", func(t *testing.T) {
		mockSender := mockedService.NewMockMessageSender(t)
		telegram := NewTelegramChannel(mockSender)

		var sent tgbotapi.MessageConfig
		mockSender.EXPECT().
			Send(mock.Anything).
			Run(func(c tgbotapi.Chattable) { sent = c.(tgbotapi.MessageConfig) }).
			Return(tgbotapi.Message{}, nil).
			Once()

		err := telegram.Send(ctx, "@promo_channel", "text", false)

		require.NoError(t, err)
		assert.Equal(t, "@promo_channel", sent.ChannelUsername)
		assert.Empty(t, sent.ParseMode)
	})

	t.Run("Invalid chat id", func(t *testing.T) {
		// Given: an address that is neither a number nor a username
		mockSender := mockedService.NewMockMessageSender(t)
		telegram := NewTelegramChannel(mockSender)

		// When: Send is called
		err := telegram.Send(ctx, "not-a-chat", "text", false)

		// Then: a delivery error is returned without calling the api
		require.ErrorIs(t, err, apperror.ErrNotificationDelivery)
		mockSender.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("Api error is wrapped", func(t *testing.T) {
		mockSender := mockedService.NewMockMessageSender(t)
		telegram := NewTelegramChannel(mockSender)

		apiErr := errors.New("Forbidden: bot was blocked by the user")
		mockSender.EXPECT().
			Send(mock.Anything).
			Return(tgbotapi.Message{}, apiErr).
			Once()

		err := telegram.Send(ctx, "1", "text", false)

		require.ErrorIs(t, err, apiErr)
	})

	t.Run("Deadline aborts a slow send", func(t *testing.T) {
		// Given: an api call slower than the deadline
		mockSender := mockedService.NewMockMessageSender(t)
		telegram := NewTelegramChannel(mockSender)

		mockSender.EXPECT().
			Send(mock.Anything).
			WaitUntil(time.After(200 * time.Millisecond)).
			Return(tgbotapi.Message{}, nil).
			Once()

		timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
		defer cancel()

		// When: Send is called
		err := telegram.Send(timeoutCtx, "1", "text", false)

		// Then: it returns the context error without waiting for the api
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// let the background send finish before the mock is asserted
		time.Sleep(300 * time.Millisecond)
	})
}

func TestLogChannel_Send(t *testing.T) {
	err := NewLogChannel(suite.NewLogger()).Send(context.Background(), "1", "text", false)

	assert.NoError(t, err)
}
