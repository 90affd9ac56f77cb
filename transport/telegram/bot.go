package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

const updateTimeout = 60

const (
	greetingMessage = "✨ Привет! Давай сыграем в крестики-нолики! ✨\n\n" +
		"Доступные команды:\n" +
		"🎮 /game - Играть прямо в боте\n" +
		"🌐 /site - Играть на сайте\n\n" +
		"Ты играешь крестиками (X), я - ноликами (O). " +
		"После победы я вышлю тебе промокод 🙃"
	siteMessage = "🌐 Игра на сайте\n\n" +
		"Перейди по ссылке, чтобы играть в красивом интерфейсе:\n\n" +
		"<a href=\"%s\">🎮 Начать игру</a>"
	siteButton = "🎮 Открыть игру"
	gameButton = "🎮 /game"

	answerInactive = "Игра не активна. Начни новую игру командой /game"
	answerOccupied = "Эта клетка уже занята!"
	answerWin      = "🎉 Вы выиграли!"
	answerLose     = "😔 Вы проиграли"
	answerDraw     = "🤝 Ничья!"
)

type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

type gameManager interface {
	StartGame(ctx context.Context, surface entity.Surface, sessionID, address string) (*entity.Session, error)
	MakeTurn(ctx context.Context, surface entity.Surface, sessionID string, cell int) (*entity.Session, error)
}

type Bot struct {
	logger *slog.Logger
	api    botAPI

	gameManager gameManager
	frontendURL string
}

func New(logger *slog.Logger, api botAPI, gameManager gameManager, frontendURL string) *Bot {
	return &Bot{
		logger:      logger.With("component", "telegram"),
		api:         api,
		gameManager: gameManager,
		frontendURL: frontendURL,
	}
}

// Run polls for updates until ctx is done. Each update is handled in its own goroutine,
// turns of one chat are serialised by the game manager.
func (that *Bot) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeout

	updates := that.api.GetUpdatesChan(updateConfig)

	var wg sync.WaitGroup
	defer wg.Wait()

	log.Info("telegram bot started")

	for {
		select {
		case <-ctx.Done():
			that.api.StopReceivingUpdates()
			log.Info("telegram bot stopped")

			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				that.HandleUpdate(ctx, update)
			}()
		}
	}
}

func (that *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		that.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		that.handleCallback(ctx, update.CallbackQuery)
	}
}

func (that *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	log := that.logger.With("method", "handleCommand", "command", msg.Command())

	chatID, ok := messageChatID(msg)
	if !ok {
		log.Warn("command without chat")
		return
	}

	var err error

	switch msg.Command() {
	case "start":
		err = that.sendGreeting(chatID)
	case "game":
		err = that.startGame(ctx, chatID, nil)
	case "site":
		err = that.sendSiteLink(chatID)
	default:
		log.Debug("unknown command")
		return
	}

	if err != nil {
		log.Error("failed to handle command", "chatID", chatID, "error", err)
	}
}

func (that *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	log := that.logger.With("method", "handleCallback", "data", query.Data)

	chatID, ok := callbackChatID(query)
	if !ok {
		log.Warn("callback without chat")
		that.answer(query.ID, "")
		return
	}

	switch {
	case query.Data == callbackNewGame:
		if err := that.startGame(ctx, chatID, query.Message); err != nil {
			log.Error("failed to start game", "chatID", chatID, "error", err)
		}

		that.answer(query.ID, "")
	case strings.HasPrefix(query.Data, callbackMovePrefix):
		that.handleMove(ctx, chatID, query)
	default:
		that.answer(query.ID, "")
	}
}

func (that *Bot) handleMove(ctx context.Context, chatID int64, query *tgbotapi.CallbackQuery) {
	log := that.logger.With("method", "handleMove", "chatID", chatID)

	cell, err := strconv.Atoi(strings.TrimPrefix(query.Data, callbackMovePrefix))
	if err != nil {
		log.Warn("malformed move callback", "data", query.Data)
		that.answer(query.ID, "")
		return
	}

	session, err := that.gameManager.MakeTurn(ctx, entity.SurfaceTelegram, strconv.FormatInt(chatID, 10), cell)
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound), errors.Is(err, apperror.ErrGameFinished):
		that.answer(query.ID, answerInactive)
		return
	case errors.Is(err, tictactoe.ErrCellOccupied):
		that.answer(query.ID, answerOccupied)
		return
	case err != nil:
		log.Error("failed to make turn", "cell", cell, "error", err)
		that.answer(query.ID, "")
		return
	}

	if err = that.showGame(chatID, query.Message, session); err != nil {
		log.Error("failed to update board", "error", err)
	}

	that.answer(query.ID, resultAnswer(session.Result()))
}

func resultAnswer(result entity.Result) string {
	switch result {
	case entity.ResultWin:
		return answerWin
	case entity.ResultLose:
		return answerLose
	case entity.ResultDraw:
		return answerDraw
	default:
		return ""
	}
}

// startGame edits the board message in place when there is one, otherwise sends a new message.
func (that *Bot) startGame(ctx context.Context, chatID int64, boardMessage *tgbotapi.Message) error {
	id := strconv.FormatInt(chatID, 10)

	session, err := that.gameManager.StartGame(ctx, entity.SurfaceTelegram, id, id)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return that.showGame(chatID, boardMessage, session)
}

func (that *Bot) showGame(chatID int64, boardMessage *tgbotapi.Message, session *entity.Session) error {
	text := FormatGameMessage(session)
	keyboard := keyboardFor(session)

	if boardMessage == nil {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyMarkup = keyboard

		if _, err := that.api.Send(msg); err != nil {
			return fmt.Errorf("failed to send board: %w", err)
		}

		return nil
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, boardMessage.MessageID, text, keyboard)
	edit.ParseMode = tgbotapi.ModeHTML

	if _, err := that.api.Send(edit); err != nil {
		return fmt.Errorf("failed to edit board: %w", err)
	}

	return nil
}

func (that *Bot) sendGreeting(chatID int64) error {
	keyboard := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(gameButton)))
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, greetingMessage)
	msg.ReplyMarkup = keyboard

	if _, err := that.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send greeting: %w", err)
	}

	return nil
}

func (that *Bot) sendSiteLink(chatID int64) error {
	gameURL := fmt.Sprintf("%s?chatId=%d", that.frontendURL, chatID)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(siteMessage, gameURL))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(siteButton, gameURL)),
	)

	if _, err := that.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send site link: %w", err)
	}

	return nil
}

func (that *Bot) answer(queryID, text string) {
	if _, err := that.api.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		that.logger.Error("failed to answer callback", "method", "answer", "error", err)
	}
}

func messageChatID(msg *tgbotapi.Message) (int64, bool) {
	if msg.Chat != nil {
		return msg.Chat.ID, true
	}

	if msg.From != nil {
		return msg.From.ID, true
	}

	return 0, false
}

func callbackChatID(query *tgbotapi.CallbackQuery) (int64, bool) {
	if query.Message != nil && query.Message.Chat != nil {
		return query.Message.Chat.ID, true
	}

	if query.From != nil {
		return query.From.ID, true
	}

	return 0, false
}
