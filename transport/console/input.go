package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var (
	ErrWrongTokenCount = errors.New("expected two numbers")
	ErrNotNumeric      = errors.New("not a number")
	ErrOutOfBounds     = errors.New("position out of bounds")
)

// parseMove - parses "row col" and checks that it names an empty cell on board.
func parseMove(line string, board *entity.Board) (entity.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Coord{}, fmt.Errorf("%w: got %d", ErrWrongTokenCount, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: %q", ErrNotNumeric, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: %q", ErrNotNumeric, fields[1])
	}

	cell := entity.Coord{Row: row, Col: col}
	if !cell.InBounds() {
		return entity.Coord{}, fmt.Errorf("%w: %s", ErrOutOfBounds, cell)
	}

	if board.At(cell) != entity.Empty {
		return entity.Coord{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return cell, nil
}

func invalidMoveMessage(err error) string {
	switch {
	case errors.Is(err, ErrWrongTokenCount):
		return "Invalid input. Please enter two numbers."
	case errors.Is(err, ErrNotNumeric):
		return "Invalid input. Please enter valid numbers."
	case errors.Is(err, ErrOutOfBounds):
		return "Invalid move. Position out of bounds."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Invalid move. Cell already taken."
	default:
		return "Invalid move."
	}
}
