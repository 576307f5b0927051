package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places mark on cell and updates the game outcome and turn.
func MakeTurn(gameInstance *entity.Game, mark entity.Cell, cell entity.Coord) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board[cell.Row][cell.Col] = mark
	gameInstance.Moves++
	updateGameStatus(gameInstance, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark entity.Cell, cell entity.Coord) error {
	if !cell.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board.At(cell) != entity.Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Cell) {
	gameInstance.Outcome = EvaluateOutcome(&gameInstance.Board)
	if gameInstance.IsOngoing() {
		gameInstance.Turn = mark.Opponent()
	}
}
