package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrInvalidArguments = errors.New("invalid arguments")

func (that *Server) handleMove(_ context.Context, command *Command, writer io.Writer) error {
	log := that.logger.With("method", "handleMove")

	column, row, err := parseCell(command.Args)
	if err != nil {
		log.Debug("bad move arguments", "args", command.Args, "error", err)
		return that.sendErrorResponse(writer, command.Action, err.Error())
	}

	snapshot, err := that.game.MakeTurn(column, row)
	if err != nil {
		log.Debug("failed to make turn", "error", err)
		return that.sendErrorResponse(writer, command.Action, err.Error())
	}

	return that.sendSnapshot(writer, command.Action, snapshot)
}

func (that *Server) handleUndo(_ context.Context, command *Command, writer io.Writer) error {
	snapshot, err := that.game.Undo()
	if err != nil {
		return that.sendErrorResponse(writer, command.Action, err.Error())
	}

	return that.sendSnapshot(writer, command.Action, snapshot)
}

func (that *Server) handleRedo(_ context.Context, command *Command, writer io.Writer) error {
	snapshot, err := that.game.Redo()
	if err != nil {
		return that.sendErrorResponse(writer, command.Action, err.Error())
	}

	return that.sendSnapshot(writer, command.Action, snapshot)
}

func (that *Server) handleNewGame(_ context.Context, command *Command, writer io.Writer) error {
	return that.sendSnapshot(writer, command.Action, that.game.NewGame())
}

func (that *Server) handleShow(_ context.Context, command *Command, writer io.Writer) error {
	return that.sendSnapshot(writer, command.Action, that.game.State())
}

func (that *Server) handleHelp(_ context.Context, command *Command, writer io.Writer) error {
	return that.sendMessage(writer, Response{Action: command.Action, Commands: helpLines})
}

func (that *Server) handleQuit(_ context.Context, _ *Command, _ io.Writer) error {
	return errQuit
}

// parseCell - expects exactly "<column> <row>".
func parseCell(args []string) (int, int, error) {
	if len(args) != 2 { //nolint: mnd // column and row
		return 0, 0, fmt.Errorf("%w: expected <column> <row>", ErrInvalidArguments)
	}

	column, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q is not a number", ErrInvalidArguments, args[0])
	}

	row, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q is not a number", ErrInvalidArguments, args[1])
	}

	return column, row, nil
}
