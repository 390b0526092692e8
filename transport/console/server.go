package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var errQuit = errors.New("quit requested")

type gameManager interface {
	MakeTurn(column, row int) (entity.Snapshot, error)
	Undo() (entity.Snapshot, error)
	Redo() (entity.Snapshot, error)
	NewGame() entity.Snapshot
	State() entity.Snapshot
}

type Options struct {
	Prompt string
	Format string
}

type Server struct {
	logger *slog.Logger
	game   gameManager

	prompt string
	format string

	handlers map[string]func(ctx context.Context, command *Command, writer io.Writer) error
}

func New(logger *slog.Logger, game gameManager, opts Options) *Server {
	format := opts.Format
	if format != FormatJSON {
		format = FormatText
	}

	server := &Server{
		logger: logger.With("component", "console"),
		game:   game,
		prompt: opts.Prompt,
		format: format,

		handlers: make(map[string]func(context.Context, *Command, io.Writer) error),
	}

	server.handlers[actionMove] = server.handleMove
	server.handlers[actionUndo] = server.handleUndo
	server.handlers[actionRedo] = server.handleRedo
	server.handlers[actionNew] = server.handleNewGame
	server.handlers[actionShow] = server.handleShow
	server.handlers[actionHelp] = server.handleHelp
	server.handlers[actionQuit] = server.handleQuit

	return server
}

// Start - reads commands line by line until quit, end of input or context cancellation.
func (that *Server) Start(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Start")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, reader)

	if err := that.handleShow(ctx, &Command{Action: actionShow}, writer); err != nil {
		return fmt.Errorf("failed to show board: %w", err)
	}

	for {
		if err := that.writePrompt(writer); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read command: %w", err)
				}

				log.Info("input closed, stopping console")
				return nil
			}

			err := that.handleLine(ctx, line, writer)
			if errors.Is(err, errQuit) {
				log.Info("quit requested, stopping console")
				return nil
			}

			if err != nil {
				log.Error("error processing command", "error", err)
			}
		}
	}
}

// handleLine - dispatches a single input line to its handler.
func (that *Server) handleLine(ctx context.Context, line string, writer io.Writer) error {
	command, ok := ParseCommand(line)
	if !ok {
		return nil
	}

	handler, ok := that.handlers[command.Action]
	if !ok {
		that.logger.Debug("unknown command", "method", "handleLine", "action", command.Action)
		return that.sendErrorResponse(writer, command.Action, fmt.Sprintf("unknown command %q, type help", command.Action))
	}

	return handler(ctx, command, writer)
}

func (that *Server) writePrompt(writer io.Writer) error {
	if that.prompt == "" {
		return nil
	}

	if _, err := io.WriteString(writer, that.prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

// readLines - scans the reader in the background so the loop can watch the context.
func readLines(ctx context.Context, reader io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}
