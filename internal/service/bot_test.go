package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

type fixedRand struct {
	float float64
	index int
}

func (that fixedRand) Float64() float64 { return that.float }
func (that fixedRand) IntN(int) int     { return that.index }

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Blocks the player's line when the coin says so", func(t *testing.T) {
		// Given: the player threatens the top row
		board := entity.Board{entity.PlayerX, entity.PlayerX}
		botService := NewBotService(fixedRand{float: 0.1})

		// When: the bot moves
		cell, err := botService.MakeTurn(&board)

		// Then: it takes cell 2 with its own mark
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		assert.Equal(t, entity.OpponentMark, board[2])
	})

	t.Run("Picks a random empty cell otherwise", func(t *testing.T) {
		// Given: an empty board and a coin that skips blocking
		var board entity.Board
		botService := NewBotService(fixedRand{float: 0.9, index: 4})

		// When: the bot moves
		cell, err := botService.MakeTurn(&board)

		// Then: the fifth empty cell is used
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, entity.OpponentMark, board[4])
	})

	t.Run("Full board", func(t *testing.T) {
		// Given: a board with no empty cells
		var board entity.Board
		for i := range board {
			board[i] = entity.PlayerX
		}
		botService := NewBotService(tictactoe.NewSeededRand(1))

		// When: the bot moves
		cell, err := botService.MakeTurn(&board)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
		assert.Equal(t, tictactoe.NoMove, cell)
	})
}
