package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockedService "github.com/rocketscienceinc/tictactoe-promo/mocks/service"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

func TestNotificationService_NotifyWin(t *testing.T) {
	t.Run("Sends the code to the session address", func(t *testing.T) {
		// Given: a channel expecting the win message
		mockChannel := mockedService.NewMockChannel(t)
		notificationService := NewNotificationService(suite.NewLogger(), mockChannel, "999", time.Second)

		mockChannel.EXPECT().
			Send(mock.Anything, "123", "🎉 Победа! Промокод выдан: <b>AB9J2</b>", true).
			Return(nil).
			Once()

		// When: NotifyWin is called with an address
		notificationService.NotifyWin(context.Background(), "123", "AB9J2")

		// Then: the mock expectations are met
	})

	t.Run("Falls back to the default address", func(t *testing.T) {
		// Given: a configured default address
		mockChannel := mockedService.NewMockChannel(t)
		notificationService := NewNotificationService(suite.NewLogger(), mockChannel, "999", time.Second)

		mockChannel.EXPECT().
			Send(mock.Anything, "999", mock.Anything, true).
			Return(nil).
			Once()

		// When: NotifyWin is called without an address
		notificationService.NotifyWin(context.Background(), "", "AB9J2")
	})

	t.Run("Skips delivery with no address at all", func(t *testing.T) {
		// Given: no default address
		mockChannel := mockedService.NewMockChannel(t)
		notificationService := NewNotificationService(suite.NewLogger(), mockChannel, "", time.Second)

		// When: NotifyWin is called without an address
		notificationService.NotifyWin(context.Background(), "", "AB9J2")

		// Then: the channel is never used
		mockChannel.AssertNotCalled(t, "Send")
	})

	t.Run("Delivery outlives a cancelled caller context", func(t *testing.T) {
		// Given: a caller context that is already cancelled
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mockChannel := mockedService.NewMockChannel(t)
		notificationService := NewNotificationService(suite.NewLogger(), mockChannel, "", time.Second)

		var sendErr error
		mockChannel.EXPECT().
			Send(mock.Anything, "123", mock.Anything, true).
			Run(func(ctx context.Context, _, _ string, _ bool) { sendErr = ctx.Err() }).
			Return(nil).
			Once()

		// When: NotifyWin is called
		notificationService.NotifyWin(ctx, "123", "AB9J2")

		// Then: the channel sees a live context
		assert.NoError(t, sendErr)
	})
}

func TestNotificationService_NotifyLose(t *testing.T) {
	t.Run("Sends the plain lose message", func(t *testing.T) {
		// Given: a channel expecting the lose message
		mockChannel := mockedService.NewMockChannel(t)
		notificationService := NewNotificationService(suite.NewLogger(), mockChannel, "", time.Second)

		mockChannel.EXPECT().
			Send(mock.Anything, "123", "😔 Проигрыш", false).
			Return(nil).
			Once()

		// When: NotifyLose is called
		notificationService.NotifyLose(context.Background(), "123")
	})

	t.Run("Delivery errors are swallowed", func(t *testing.T) {
		// Given: a failing channel
		mockChannel := mockedService.NewMockChannel(t)
		notificationService := NewNotificationService(suite.NewLogger(), mockChannel, "", time.Second)

		mockChannel.EXPECT().
			Send(mock.Anything, "123", mock.Anything, false).
			Return(errors.New("telegram down")).
			Once()

		// When / Then: NotifyLose returns normally
		assert.NotPanics(t, func() {
			notificationService.NotifyLose(context.Background(), "123")
		})
	})
}
