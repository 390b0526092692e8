package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine - state machine of a tic-tac-toe session. The board is never stored, it is
// projected from the move history, so undo and redo cannot desync it.
//
// Engine is not safe for concurrent use; every session owns its own instance.
type Engine struct {
	moves  []entity.Move
	undone []entity.Move

	// winners survives ResetGame for the lifetime of the engine
	winners []entity.Player

	turn   entity.Player
	status entity.Status
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.ResetGame()

	return engine
}

// ResetGame - starts a new game. The most recent winner goes first, player one if nobody won yet.
func (that *Engine) ResetGame() {
	that.moves = make([]entity.Move, 0, entity.CellCount)
	that.undone = make([]entity.Move, 0, entity.CellCount)
	that.status = entity.StatusPlaying

	that.turn = entity.PlayerOne
	if len(that.winners) > 0 {
		that.turn = that.winners[len(that.winners)-1]
	}
}

// ApplyMove - places the current player's mark. A real move empties the redo buffer.
func (that *Engine) ApplyMove(column, row int) error {
	if err := that.validateMove(column, row); err != nil {
		return err
	}

	that.moves = append(that.moves, entity.Move{
		Column: column,
		Row:    row,
		Mark:   that.turn.Mark(),
	})
	that.undone = that.undone[:0]

	that.assess()

	return nil
}

func (that *Engine) Undo() error {
	if len(that.moves) == 0 {
		return apperror.ErrNothingToUndo
	}

	last := that.moves[len(that.moves)-1]
	that.moves = that.moves[:len(that.moves)-1]
	that.undone = append(that.undone, last)

	that.assess()

	return nil
}

// Redo - replays the most recently undone move with its original mark.
func (that *Engine) Redo() error {
	if len(that.undone) == 0 {
		return apperror.ErrNothingToRedo
	}

	move := that.undone[len(that.undone)-1]
	that.undone = that.undone[:len(that.undone)-1]
	that.moves = append(that.moves, move)

	that.assess()

	return nil
}

func (that *Engine) Snapshot() entity.Snapshot {
	snapshot := entity.Snapshot{
		Cells:         Board(that.moves),
		Status:        that.status,
		CurrentPlayer: that.turn,
		CanUndo:       len(that.moves) > 0,
		CanRedo:       len(that.undone) > 0,
	}

	if len(that.winners) > 0 {
		winner := that.winners[len(that.winners)-1]
		snapshot.LastWinner = &winner
	}

	return snapshot
}

func (that *Engine) Status() entity.Status {
	return that.status
}

func (that *Engine) Turn() entity.Player {
	return that.turn
}

func (that *Engine) Moves() []entity.Move {
	return append([]entity.Move(nil), that.moves...)
}

// Undone - moves waiting for redo, the next one to be redone last.
func (that *Engine) Undone() []entity.Move {
	return append([]entity.Move(nil), that.undone...)
}

func (that *Engine) Winners() []entity.Player {
	return append([]entity.Player(nil), that.winners...)
}

// validateMove - checks the move without touching any state.
func (that *Engine) validateMove(column, row int) error {
	if that.status.IsOver() {
		return apperror.ErrGameFinished
	}

	if column < 0 || column >= entity.BoardSize || row < 0 || row >= entity.BoardSize {
		return fmt.Errorf("%w: column %d, row %d", apperror.ErrInvalidCell, column, row)
	}

	for _, move := range that.moves {
		if move.Column == column && move.Row == row {
			return fmt.Errorf("%w: column %d, row %d", apperror.ErrCellOccupied, column, row)
		}
	}

	return nil
}

// assess - re-evaluates the game after any change to the history and hands the turn over.
func (that *Engine) assess() {
	// the only way to get here from a won game is undoing the winning move
	if that.status == entity.StatusWon {
		that.winners = that.winners[:len(that.winners)-1]
	}

	outcome := Evaluate(that.moves)
	that.status = outcome.Status

	if outcome.Status == entity.StatusWon {
		that.winners = append(that.winners, outcome.Winner)
	}

	that.turn = that.turn.Other()
}
