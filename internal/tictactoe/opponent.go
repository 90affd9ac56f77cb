package tictactoe

import "github.com/rocketscienceinc/tictactoe-promo/internal/entity"

// blockProbability is the chance the opponent even looks for a block.
const blockProbability = 0.5

// ChooseOpponentMove picks the computer's next cell, or NoMove when the board is full.
// It is deliberately weak: half the time it ignores an available block and it never plays for its own win.
func ChooseOpponentMove(board entity.Board, rnd Rand) int {
	if rnd.Float64() < blockProbability {
		if block := FindWinningMove(board, entity.PlayerMark); block != NoMove {
			return block
		}
	}

	available := EmptyCells(board)
	if len(available) == 0 {
		return NoMove
	}

	return available[rnd.IntN(len(available))]
}
