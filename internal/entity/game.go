package entity

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

type Status string

const (
	StatusPlaying   Status = "playing"
	StatusStalemate Status = "stalemate" // no line can be completed, but empty cells remain
	StatusWon       Status = "won"
	StatusFinished  Status = "finished" // board full, no winner
)

// IsAcceptingMoves - a stalemate still takes moves, it only says nobody can win.
func (that Status) IsAcceptingMoves() bool {
	return that == StatusPlaying || that == StatusStalemate
}

func (that Status) IsOver() bool {
	return !that.IsAcceptingMoves()
}

type Move struct {
	Column int  `json:"column"`
	Row    int  `json:"row"`
	Mark   Mark `json:"mark"`
}

// Cell - index of the move in the row-major board.
func (that Move) Cell() int {
	return that.Row*BoardSize + that.Column
}

// Snapshot - render-ready view of a game.
type Snapshot struct {
	Cells         [CellCount]Mark `json:"cells"`
	Status        Status          `json:"status"`
	CurrentPlayer Player          `json:"current_player"`
	LastWinner    *Player         `json:"last_winner,omitempty"`
	CanUndo       bool            `json:"can_undo"`
	CanRedo       bool            `json:"can_redo"`
}
