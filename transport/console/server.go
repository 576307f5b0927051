package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type uGame interface {
	NewGame() *entity.Game
	IsComputerTurn(game *entity.Game) bool
	HumanMark() entity.Cell

	MakeTurn(game *entity.Game, cell entity.Coord) error
	MakeBotTurn(game *entity.Game) (entity.Coord, error)
}

// Server - plays one game on a text terminal: reads human moves from input and prints the board to output.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	input  *bufio.Scanner
	output io.Writer
}

func New(logger *slog.Logger, uGame uGame, input io.Reader, output io.Writer) *Server {
	return &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Start - runs a game until it finishes, the input is closed or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	game := that.uGame.NewGame()
	log := that.logger.With("method", "Start", "gameID", game.ID)

	fmt.Fprintln(that.output, "Welcome to Tic Tac Toe!")
	fmt.Fprintf(that.output, "You play %s.\n", that.uGame.HumanMark())
	renderBoard(that.output, &game.Board)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			log.Info("game interrupted", "error", err)
			return fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.playTurn(game); err != nil {
			return err
		}

		renderBoard(that.output, &game.Board)
	}

	fmt.Fprintln(that.output, outcomeMessage(game.Outcome))

	return nil
}

func (that *Server) playTurn(game *entity.Game) error {
	if that.uGame.IsComputerTurn(game) {
		move, err := that.uGame.MakeBotTurn(game)
		if err != nil {
			return fmt.Errorf("computer turn failed: %w", err)
		}

		fmt.Fprintf(that.output, "AI move: %d %d\n", move.Row, move.Col)
		return nil
	}

	cell, err := that.readMove(&game.Board)
	if err != nil {
		return err
	}

	if err = that.uGame.MakeTurn(game, cell); err != nil {
		return fmt.Errorf("human turn failed: %w", err)
	}

	return nil
}

// readMove - prompts until the input names an empty cell on the board.
func (that *Server) readMove(board *entity.Board) (entity.Coord, error) {
	for {
		fmt.Fprint(that.output, "Enter your move (row and column): ")

		if !that.input.Scan() {
			if err := that.input.Err(); err != nil {
				return entity.Coord{}, fmt.Errorf("failed to read move: %w", err)
			}
			return entity.Coord{}, ErrInputClosed
		}

		cell, err := parseMove(that.input.Text(), board)
		if err != nil {
			that.logger.Debug("invalid move input", "input", that.input.Text(), "error", err)
			fmt.Fprintln(that.output, invalidMoveMessage(err))
			continue
		}

		return cell, nil
	}
}

func outcomeMessage(outcome entity.Outcome) string {
	switch outcome {
	case entity.WinX, entity.WinO:
		return fmt.Sprintf("Player %s wins!", winnerOf(outcome))
	case entity.Draw:
		return "It's a draw!"
	default:
		return ""
	}
}

func winnerOf(outcome entity.Outcome) entity.Cell {
	if outcome == entity.WinX {
		return entity.MarkX
	}
	return entity.MarkO
}
