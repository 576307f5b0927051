package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Position values from the bot's point of view.
const (
	scoreLoss = -1
	scoreDraw = 0
	scoreWin  = 1
)

type BotService interface {
	Mark() entity.Cell
	Evaluate(board *entity.Board, maximizing bool) int
	SelectMove(board *entity.Board) (entity.Coord, error)
	MakeTurn(game *entity.Game) (entity.Coord, error)
}

// botService - plays mark with a full minimax search over the remaining game tree.
// No pruning, depth limit or memoization: the 3x3 tree is small enough to walk every time.
type botService struct {
	mark     entity.Cell
	opponent entity.Cell
}

func NewBotService(mark entity.Cell) BotService {
	return &botService{
		mark:     mark,
		opponent: mark.Opponent(),
	}
}

func (that *botService) Mark() entity.Cell {
	return that.mark
}

// Evaluate - returns the minimax value of board: +1 if the bot can force a win, -1 if the
// opponent can, 0 otherwise. maximizing is true when the bot is the side to move.
// The board is mutated during the search and restored before returning.
func (that *botService) Evaluate(board *entity.Board, maximizing bool) int {
	if tictactoe.HasWon(board, that.mark) {
		return scoreWin
	}

	if tictactoe.HasWon(board, that.opponent) {
		return scoreLoss
	}

	if tictactoe.IsFull(board) {
		return scoreDraw
	}

	if maximizing {
		best := scoreLoss - 1
		for _, cell := range tictactoe.EmptyCells(board) {
			best = max(best, that.try(board, cell, that.mark, false))
		}
		return best
	}

	best := scoreWin + 1
	for _, cell := range tictactoe.EmptyCells(board) {
		best = min(best, that.try(board, cell, that.opponent, true))
	}
	return best
}

// SelectMove - picks the empty cell with the highest value for the bot.
// Ties go to the first cell in row-major order.
func (that *botService) SelectMove(board *entity.Board) (entity.Coord, error) {
	cells := tictactoe.EmptyCells(board)
	if len(cells) == 0 {
		return entity.Coord{}, ErrNoAvailableMoves
	}

	bestMove := cells[0]
	bestScore := scoreLoss - 1
	for _, cell := range cells {
		if score := that.try(board, cell, that.mark, false); score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove, nil
}

func (that *botService) MakeTurn(game *entity.Game) (entity.Coord, error) {
	move, err := that.SelectMove(&game.Board)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, that.mark, move); err != nil {
		return entity.Coord{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

// try - places mark on cell, evaluates the result and always clears the cell again.
func (that *botService) try(board *entity.Board, cell entity.Coord, mark entity.Cell, maximizing bool) int {
	board[cell.Row][cell.Col] = mark
	defer func() { board[cell.Row][cell.Col] = entity.Empty }()

	return that.Evaluate(board, maximizing)
}
