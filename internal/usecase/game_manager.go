package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameEngine interface {
	ApplyMove(column, row int) error
	Undo() error
	Redo() error
	ResetGame()
	Snapshot() entity.Snapshot
}

// GameManager - drives one game session. It holds no lock, so every session needs its own manager.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine
}

func NewGameManager(logger *slog.Logger, engine gameEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,
	}
}

func (that *GameManager) MakeTurn(column, row int) (entity.Snapshot, error) {
	log := that.logger.With("method", "MakeTurn", "column", column, "row", row)

	player := that.engine.Snapshot().CurrentPlayer

	if err := that.engine.ApplyMove(column, row); err != nil {
		log.Warn("move rejected", "player", player.String(), "error", err)
		return that.engine.Snapshot(), fmt.Errorf("failed make turn: %w", err)
	}

	snapshot := that.engine.Snapshot()
	log.Debug("move applied", "player", player.String())
	that.logOutcome(log, snapshot)

	return snapshot, nil
}

func (that *GameManager) Undo() (entity.Snapshot, error) {
	log := that.logger.With("method", "Undo")

	if err := that.engine.Undo(); err != nil {
		log.Warn("undo rejected", "error", err)
		return that.engine.Snapshot(), fmt.Errorf("failed undo move: %w", err)
	}

	snapshot := that.engine.Snapshot()
	log.Debug("move undone", "status", snapshot.Status)

	return snapshot, nil
}

func (that *GameManager) Redo() (entity.Snapshot, error) {
	log := that.logger.With("method", "Redo")

	if err := that.engine.Redo(); err != nil {
		log.Warn("redo rejected", "error", err)
		return that.engine.Snapshot(), fmt.Errorf("failed redo move: %w", err)
	}

	snapshot := that.engine.Snapshot()
	log.Debug("move redone", "status", snapshot.Status)
	that.logOutcome(log, snapshot)

	return snapshot, nil
}

// NewGame - resets the board; the last winner opens the next game.
func (that *GameManager) NewGame() entity.Snapshot {
	that.engine.ResetGame()

	snapshot := that.engine.Snapshot()
	that.logger.Info("new game started", "method", "NewGame", "first", snapshot.CurrentPlayer.String())

	return snapshot
}

func (that *GameManager) State() entity.Snapshot {
	return that.engine.Snapshot()
}

func (that *GameManager) logOutcome(log *slog.Logger, snapshot entity.Snapshot) {
	switch snapshot.Status {
	case entity.StatusWon:
		if snapshot.LastWinner != nil {
			log.Info("game won", "winner", snapshot.LastWinner.String())
		}
	case entity.StatusStalemate:
		log.Info("game can no longer be won")
	case entity.StatusFinished:
		log.Info("game finished without a winner")
	case entity.StatusPlaying:
	}
}
