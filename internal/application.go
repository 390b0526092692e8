package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs one game session on the given input and output until quit, end of input or a signal.
func RunApp(logger *slog.Logger, conf *config.Config, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameManager := usecase.NewGameManager(logger, tictactoe.NewEngine())
	consoleServer := console.New(logger, gameManager, console.Options{
		Prompt: conf.Console.Prompt,
		Format: conf.Console.Format,
	})

	log.Info("Starting console session", "format", conf.Console.Format)

	if err := consoleServer.Start(ctx, input, output); err != nil {
		return fmt.Errorf("console session error: %w", err)
	}

	log.Info("Console session closed")

	return nil
}
