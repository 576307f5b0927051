package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestParseMove(t *testing.T) {
	board := entity.Board{
		{entity.MarkX, entity.Empty, entity.Empty},
		{entity.Empty, entity.MarkO, entity.Empty},
		{entity.Empty, entity.Empty, entity.Empty},
	}

	t.Run("Valid move", func(t *testing.T) {
		// When: parsing a move to an empty cell with extra spaces
		cell, err := parseMove("  2   1 ", &board)

		// Then: the coordinate is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Coord{Row: 2, Col: 1}, cell)
	})

	tests := []struct {
		name    string
		input   string
		wantErr error
		message string
	}{
		{"Empty line", "", ErrWrongTokenCount, "Invalid input. Please enter two numbers."},
		{"One number", "1", ErrWrongTokenCount, "Invalid input. Please enter two numbers."},
		{"Three numbers", "1 2 0", ErrWrongTokenCount, "Invalid input. Please enter two numbers."},
		{"Letters", "a b", ErrNotNumeric, "Invalid input. Please enter valid numbers."},
		{"Second token not a number", "1 x", ErrNotNumeric, "Invalid input. Please enter valid numbers."},
		{"Row too large", "3 0", ErrOutOfBounds, "Invalid move. Position out of bounds."},
		{"Negative column", "0 -1", ErrOutOfBounds, "Invalid move. Position out of bounds."},
		{"Occupied by X", "0 0", apperror.ErrCellOccupied, "Invalid move. Cell already taken."},
		{"Occupied by O", "1 1", apperror.ErrCellOccupied, "Invalid move. Cell already taken."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: parsing invalid input
			_, err := parseMove(tt.input, &board)

			// Then: the specific reason is reported
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.message, invalidMoveMessage(err))
		})
	}
}
