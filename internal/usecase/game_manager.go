package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type botService interface {
	Mark() entity.Cell
	MakeTurn(game *entity.Game) (entity.Coord, error)
}

// GameManager - runs single human vs computer games.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	humanMark    entity.Cell
	computerMark entity.Cell
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	computerMark := bot.Mark()

	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,

		humanMark:    computerMark.Opponent(),
		computerMark: computerMark,
	}
}

func (that *GameManager) HumanMark() entity.Cell {
	return that.humanMark
}

func (that *GameManager) ComputerMark() entity.Cell {
	return that.computerMark
}

// NewGame - creates an empty game with X to move.
func (that *GameManager) NewGame() *entity.Game {
	game := entity.NewGame(uuid.NewString())

	that.logger.Info("game started", "gameID", game.ID, "human", that.humanMark.String(), "computer", that.computerMark.String())

	return game
}

func (that *GameManager) IsComputerTurn(game *entity.Game) bool {
	return game.IsOngoing() && game.Turn == that.computerMark
}

// MakeTurn - applies the human's move.
func (that *GameManager) MakeTurn(game *entity.Game, cell entity.Coord) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := tictactoe.MakeTurn(game, that.humanMark, cell); err != nil {
		log.Debug("human turn rejected", "row", cell.Row, "col", cell.Col, "error", err)
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("human moved", "row", cell.Row, "col", cell.Col)
	that.logIfFinished(game)

	return nil
}

// MakeBotTurn - lets the computer choose and apply its move.
func (that *GameManager) MakeBotTurn(game *entity.Game) (entity.Coord, error) {
	log := that.logger.With("method", "MakeBotTurn", "gameID", game.ID)

	move, err := that.bot.MakeTurn(game)
	if err != nil {
		log.Error("computer failed to move", "error", err)
		return entity.Coord{}, fmt.Errorf("failed make bot turn: %w", err)
	}

	log.Debug("computer moved", "row", move.Row, "col", move.Col)
	that.logIfFinished(game)

	return move, nil
}

func (that *GameManager) logIfFinished(game *entity.Game) {
	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "outcome", game.Outcome.String(), "moves", game.Moves)
	}
}
