package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const (
	callbackMovePrefix = "move_"
	callbackNewGame    = "new_game"

	gameTitle       = "✨ <b>Крестики-нолики</b> ✨\n\n"
	statusWin       = "\n🎉 <b>Поздравляем! Вы выиграли!</b>\n"
	statusLose      = "\n😔 <b>К сожалению, вы проиграли.</b>\nХотите попробовать ещё раз?"
	statusDraw      = "\n🤝 <b>Ничья!</b>\nХотите попробовать ещё раз?"
	statusYourTurn  = "\nВаш ход! Выберите клетку:"
	playAgainButton = "🎮 Играть ещё раз"
)

func cellEmoji(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return "❌"
	case entity.PlayerO:
		return "⭕"
	default:
		return "⬜"
	}
}

// FormatGameMessage renders the board as three emoji rows under a title, followed by the status line.
func FormatGameMessage(session *entity.Session) string {
	var builder strings.Builder

	builder.WriteString(gameTitle)

	for row := range 3 {
		cells := make([]string, 3)
		for col := range 3 {
			cells[col] = cellEmoji(session.Board[row*3+col])
		}

		builder.WriteString(strings.Join(cells, " "))
		builder.WriteString("\n")
	}

	switch session.Result() {
	case entity.ResultWin:
		builder.WriteString(statusWin)
	case entity.ResultLose:
		builder.WriteString(statusLose)
	case entity.ResultDraw:
		builder.WriteString(statusDraw)
	default:
		builder.WriteString(statusYourTurn)
	}

	return builder.String()
}

// GameKeyboard is a 3x3 grid of buttons; every cell carries move_<index>, occupied ones included.
func GameKeyboard(board entity.Board) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 3)

	for row := range 3 {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, 3)
		for col := range 3 {
			index := row*3 + col
			buttons = append(buttons,
				tgbotapi.NewInlineKeyboardButtonData(cellEmoji(board[index]), fmt.Sprintf("%s%d", callbackMovePrefix, index)))
		}

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func PlayAgainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(playAgainButton, callbackNewGame)),
	)
}

func keyboardFor(session *entity.Session) tgbotapi.InlineKeyboardMarkup {
	if session.IsFinished() {
		return PlayAgainKeyboard()
	}

	return GameKeyboard(session.Board)
}
