package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseOpponentMove(t *testing.T) {
	t.Run("Blocks when the coin says so", func(t *testing.T) {
		// Given: X threatens cell 2 and the draw is below the block probability
		board := entity.Board{x, x, e, o, e, e, e, e, e}
		rnd := &stubRand{floats: []float64{0.1}}

		// When: the opponent chooses
		cell := ChooseOpponentMove(board, rnd)

		// Then: it blocks
		assert.Equal(t, 2, cell)
	})

	t.Run("Ignores the block when the coin says so", func(t *testing.T) {
		// Given: X threatens cell 2 but the draw is at the block probability
		board := entity.Board{x, x, e, o, e, e, e, e, e}
		rnd := &stubRand{floats: []float64{0.5}, ints: []int{1}}

		// When: the opponent chooses
		cell := ChooseOpponentMove(board, rnd)

		// Then: it picks the second empty cell (empties are 2,4,5,6,7,8)
		assert.Equal(t, 4, cell)
	})

	t.Run("Falls back to random when there is nothing to block", func(t *testing.T) {
		rnd := &stubRand{floats: []float64{0.1}, ints: []int{0}}

		cell := ChooseOpponentMove(entity.Board{}, rnd)

		assert.Equal(t, 0, cell)
	})

	t.Run("Never plays for its own win", func(t *testing.T) {
		// Given: O could win at cell 2, X has no threat
		board := entity.Board{o, o, e, x, e, e, e, e, x}
		rnd := &stubRand{floats: []float64{0.1}, ints: []int{4}}

		// When: the opponent chooses
		cell := ChooseOpponentMove(board, rnd)

		// Then: it plays the random pick (empties are 2,4,5,6,7), not the winning cell
		assert.Equal(t, 7, cell)
	})

	t.Run("No move on a full board", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}
		rnd := &stubRand{floats: []float64{0.9}}

		assert.Equal(t, NoMove, ChooseOpponentMove(board, rnd))
	})

	t.Run("Never returns an occupied cell and only NoMove when full", func(t *testing.T) {
		rnd := NewSeededRand(1)

		for n := range 19683 {
			board := boardFromIndex(n)

			cell := ChooseOpponentMove(board, rnd)
			if IsBoardFull(board) {
				require.Equal(t, NoMove, cell, "board %v", board)
				continue
			}

			require.NotEqual(t, NoMove, cell, "board %v", board)
			require.Equal(t, e, board[cell], "board %v", board)
		}
	})
}

func TestGeneratePromoCode(t *testing.T) {
	t.Run("Maps draws onto the alphabet", func(t *testing.T) {
		rnd := &stubRand{ints: []int{0, 1, 31, 8, 24}}

		assert.Equal(t, "AB9J2", GeneratePromoCode(rnd))
	})

	t.Run("Always five characters from the alphabet", func(t *testing.T) {
		rnd := NewSeededRand(3)

		for range 1000 {
			code := GeneratePromoCode(rnd)
			require.Len(t, code, PromoCodeLength)
			require.True(t, IsValidPromoCode(code), code)
			require.NotContainsf(t, code, "I", "ambiguous character in %s", code)
			require.NotContainsf(t, code, "O", "ambiguous character in %s", code)
			require.NotContainsf(t, code, "0", "ambiguous character in %s", code)
			require.NotContainsf(t, code, "1", "ambiguous character in %s", code)
		}
	})
}

func TestIsValidPromoCode(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"AB9J2", true},
		{"ZZZZZ", true},
		{"AB9J", false},
		{"AB9J22", false},
		{"AB0J2", false},
		{"ab9j2", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPromoCode(tt.code))
		})
	}
}
