package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

// NoMove is returned by move finders when no cell qualifies.
const NoMove = -1

var (
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", apperror.ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrInvalidMove)
	ErrInvalidMark  = fmt.Errorf("%w: invalid mark", apperror.ErrInvalidMove)

	// WinCombos is scanned in this order; FindWinningMove tie-breaks rely on it.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// ApplyMove places mark on cell. The board is left untouched on error.
func ApplyMove(board *entity.Board, cell int, mark entity.Mark) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if mark != entity.PlayerX && mark != entity.PlayerO {
		return fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, cell)
	}

	board[cell] = mark

	return nil
}

func CheckWinner(board entity.Board, mark entity.Mark) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

func IsBoardFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// FindWinningMove returns the empty cell of the first line where mark holds the other two cells.
func FindWinningMove(board entity.Board, mark entity.Mark) int {
	for _, combo := range WinCombos {
		marks, empty := 0, NoMove

		for _, cell := range combo {
			switch board[cell] {
			case mark:
				marks++
			case entity.EmptyCell:
				if empty == NoMove {
					empty = cell
				}
			}
		}

		if marks == 2 && empty != NoMove {
			return empty
		}
	}

	return NoMove
}

func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}
