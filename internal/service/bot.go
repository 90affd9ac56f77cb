package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(board *entity.Board) (int, error)
}

type botService struct {
	rnd tictactoe.Rand
}

func NewBotService(rnd tictactoe.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

// MakeTurn places the opponent mark and returns the chosen cell.
func (that *botService) MakeTurn(board *entity.Board) (int, error) {
	cell := tictactoe.ChooseOpponentMove(*board, that.rnd)
	if cell == tictactoe.NoMove {
		return tictactoe.NoMove, ErrNoAvailableMoves
	}

	if err := tictactoe.ApplyMove(board, cell, entity.OpponentMark); err != nil {
		return tictactoe.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
