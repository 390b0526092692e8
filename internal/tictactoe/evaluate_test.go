package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.MarkNone
)

// movesOf - builds a history from row-major cell indexes, alternating X and O starting with X.
func movesOf(cells ...int) []entity.Move {
	moves := make([]entity.Move, 0, len(cells))
	for i, cell := range cells {
		mark := x
		if i%2 == 1 {
			mark = o
		}
		moves = append(moves, entity.Move{Column: cell % 3, Row: cell / 3, Mark: mark})
	}

	return moves
}

func TestBoard(t *testing.T) {
	t.Run("Empty history gives an empty board", func(t *testing.T) {
		// When: projecting no moves
		board := Board(nil)

		// Then: every cell is empty
		assert.Equal(t, [9]entity.Mark{e, e, e, e, e, e, e, e, e}, board)
	})

	t.Run("Marks land on row-major cells", func(t *testing.T) {
		// Given: X at column 2 row 0, O at column 0 row 2
		moves := []entity.Move{
			{Column: 2, Row: 0, Mark: x},
			{Column: 0, Row: 2, Mark: o},
		}

		// When: projecting the history
		board := Board(moves)

		// Then: the marks are placed at cells 2 and 6
		assert.Equal(t, [9]entity.Mark{e, e, x, e, e, e, o, e, e}, board)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Empty history is playing", func(t *testing.T) {
		assert.Equal(t, Outcome{Status: entity.StatusPlaying}, Evaluate(nil))
	})

	t.Run("Column win for X", func(t *testing.T) {
		// Given: X fills column 0
		moves := movesOf(0, 4, 3, 1, 6)

		// When: evaluating
		outcome := Evaluate(moves)

		// Then: player one has won
		assert.Equal(t, Outcome{Status: entity.StatusWon, Winner: entity.PlayerOne}, outcome)
	})

	t.Run("Row win for O", func(t *testing.T) {
		// Given: O fills the middle row
		moves := movesOf(0, 3, 1, 4, 8, 5)

		// When: evaluating
		outcome := Evaluate(moves)

		// Then: player two has won
		assert.Equal(t, Outcome{Status: entity.StatusWon, Winner: entity.PlayerTwo}, outcome)
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		// Given: X takes cells 6, 4 and 2
		moves := movesOf(6, 0, 4, 1, 2)

		// Then: player one has won
		assert.Equal(t, entity.StatusWon, Evaluate(moves).Status)
	})

	t.Run("Full board without a line is finished", func(t *testing.T) {
		// Given: a full board with no three in a row
		moves := movesOf(0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is finished
		assert.Equal(t, Outcome{Status: entity.StatusFinished}, Evaluate(moves))
	})

	t.Run("Every line blocked before the board is full", func(t *testing.T) {
		// Given: six moves leaving only the blocked lines and one untouched anti-diagonal
		moves := movesOf(0, 1, 5, 3, 7, 8)

		// Then: nobody can win any more
		assert.Equal(t, Outcome{Status: entity.StatusStalemate}, Evaluate(moves))
	})

	t.Run("Same prefix evaluates the same", func(t *testing.T) {
		// Given: a full game
		moves := movesOf(0, 1, 2, 4, 3, 5, 7, 6, 8)

		// When: evaluating every prefix twice
		for i := range moves {
			prefix := moves[:i+1]

			// Then: the outcomes and boards match
			require.Equal(t, Evaluate(prefix), Evaluate(prefix))
			require.Equal(t, Board(prefix), Board(append([]entity.Move(nil), prefix...)))
		}
	})
}

func TestIsAchievable(t *testing.T) {
	tests := []struct {
		name   string
		line   [3]entity.Mark
		played int
		next   entity.Player
		want   bool
	}{
		{"Untouched line early", [3]entity.Mark{e, e, e}, 4, entity.PlayerOne, true},
		{"Untouched line after five moves", [3]entity.Mark{e, e, e}, 5, entity.PlayerOne, false},
		{"Both marks present", [3]entity.Mark{x, o, e}, 2, entity.PlayerOne, false},
		{"Single X, X moves next", [3]entity.Mark{x, e, e}, 6, entity.PlayerOne, true},
		{"Single X, O moves next", [3]entity.Mark{x, e, e}, 6, entity.PlayerTwo, false},
		{"Single O, O moves next", [3]entity.Mark{e, o, e}, 6, entity.PlayerTwo, true},
		{"Single O, X moves next", [3]entity.Mark{e, o, e}, 5, entity.PlayerOne, true},
		{"Two X, O moves next, room left", [3]entity.Mark{x, x, e}, 7, entity.PlayerTwo, true},
		{"Two X, O moves next, no room", [3]entity.Mark{x, x, e}, 8, entity.PlayerTwo, false},
		{"Two O, O moves next on the last cell", [3]entity.Mark{o, e, o}, 8, entity.PlayerTwo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAchievable(tt.line, tt.played, tt.next))
		})
	}
}
