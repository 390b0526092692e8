package apperror

import (
	"errors"
	"fmt"
)

var ErrInvalidMove = errors.New("invalid move")

var (
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: cell is out of the board", ErrInvalidMove)

	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
