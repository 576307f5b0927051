package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// WinLines - every three-in-a-row line: rows, then columns, then the main and anti diagonals.
var WinLines = [8][3]entity.Coord{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// HasWon - checks if mark fills any row, column or diagonal.
func HasWon(board *entity.Board, mark entity.Cell) bool {
	for _, line := range WinLines {
		if board.At(line[0]) == mark && board.At(line[1]) == mark && board.At(line[2]) == mark {
			return true
		}
	}

	return false
}

// IsFull - checks if there are no empty cells left.
func IsFull(board *entity.Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == entity.Empty {
				return false
			}
		}
	}

	return true
}

// EmptyCells - returns the empty cells in row-major order.
// The order is the bot's tie-break policy, keep it stable.
func EmptyCells(board *entity.Board) []entity.Coord {
	cells := make([]entity.Coord, 0, entity.BoardSize*entity.BoardSize)
	for row := range board {
		for col, cell := range board[row] {
			if cell == entity.Empty {
				cells = append(cells, entity.Coord{Row: row, Col: col})
			}
		}
	}

	return cells
}

// EvaluateOutcome - reports whether someone has won, the board is drawn, or play continues.
func EvaluateOutcome(board *entity.Board) entity.Outcome {
	switch {
	case HasWon(board, entity.MarkX):
		return entity.WinX
	case HasWon(board, entity.MarkO):
		return entity.WinO
	case IsFull(board):
		return entity.Draw
	default:
		return entity.Ongoing
	}
}
