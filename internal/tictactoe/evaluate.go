package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// freshLineLimit - an untouched line can only still be completed while fewer moves than this were played.
const freshLineLimit = 5

// WinCombos - cells of every straight line, taking cells left to right then top to bottom.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

// Outcome - result of evaluating a move history. Winner is meaningful only for StatusWon.
type Outcome struct {
	Status entity.Status
	Winner entity.Player
}

// Board - projects the move history onto the 3x3 grid.
func Board(moves []entity.Move) [entity.CellCount]entity.Mark {
	var board [entity.CellCount]entity.Mark
	for _, move := range moves {
		board[move.Cell()] = move.Mark
	}

	return board
}

// Evaluate - derives the game status from the move history alone.
func Evaluate(moves []entity.Move) Outcome {
	if len(moves) == 0 {
		return Outcome{Status: entity.StatusPlaying}
	}

	board := Board(moves)
	lastMark := moves[len(moves)-1].Mark
	mover := entity.PlayerOf(lastMark)

	achievableWins := 0
	for _, combo := range WinCombos {
		line := [3]entity.Mark{board[combo[0]], board[combo[1]], board[combo[2]]}

		if line[0] == lastMark && line[1] == lastMark && line[2] == lastMark {
			return Outcome{Status: entity.StatusWon, Winner: mover}
		}

		if isAchievable(line, len(moves), mover.Other()) {
			achievableWins++
		}
	}

	switch {
	case len(moves) == entity.CellCount:
		return Outcome{Status: entity.StatusFinished}
	case achievableWins == 0:
		return Outcome{Status: entity.StatusStalemate}
	default:
		return Outcome{Status: entity.StatusPlaying}
	}
}

// isAchievable - checks whether a line can still be completed by the player who started it,
// given how many moves were played and who moves next.
func isAchievable(line [3]entity.Mark, played int, next entity.Player) bool {
	var xCount, oCount int
	for _, mark := range line {
		switch mark {
		case entity.MarkX:
			xCount++
		case entity.MarkO:
			oCount++
		}
	}

	if xCount > 0 && oCount > 0 {
		return false
	}

	filled := xCount + oCount
	if filled == 0 {
		return played < freshLineLimit
	}

	owner := entity.PlayerOne
	if oCount > 0 {
		owner = entity.PlayerTwo
	}

	// the opponent has to move elsewhere after each of the owner's moves,
	// unless the owner acts first
	required := (3 - filled) * 2
	if owner == next {
		required--
	}

	return played+required <= entity.CellCount
}
