package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs one console game.
func RunApp(logger *slog.Logger, conf *config.Config, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	humanMark, err := conf.GetHumanMark()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	botService := service.NewBotService(humanMark.Opponent())
	gameManager := usecase.NewGameManager(logger, botService)

	// run console game
	gameErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game", "human", humanMark.String())
		gameErrCh <- console.New(logger, gameManager, input, output).Start(ctx)
	}()

	select {
	case err = <-gameErrCh:
		if err != nil {
			return fmt.Errorf("console game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
