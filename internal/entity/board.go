package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 3

// Cell - state of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// ParseMark - parses "X" or "O" (case-insensitive) into a mark.
func ParseMark(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return MarkX, nil
	case "O":
		return MarkO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Opponent - returns the other mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Coord - a (row, column) position on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board - the 3x3 grid, indexed [row][col].
type Board [BoardSize][BoardSize]Cell

func (that *Board) At(c Coord) Cell {
	return that[c.Row][c.Col]
}
