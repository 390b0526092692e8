package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionMove = "move"
	actionUndo = "undo"
	actionRedo = "redo"
	actionNew  = "new"
	actionShow = "show"
	actionHelp = "help"
	actionQuit = "quit"
)

var aliases = map[string]string{
	"m":    actionMove,
	"u":    actionUndo,
	"r":    actionRedo,
	"n":    actionNew,
	"s":    actionShow,
	"h":    actionHelp,
	"?":    actionHelp,
	"q":    actionQuit,
	"exit": actionQuit,
}

var helpLines = []string{
	"move <column> <row>  place your mark, column and row are 0..2 (alias: m)",
	"undo                 take back the last move (alias: u)",
	"redo                 replay the last undone move (alias: r)",
	"new                  start a new game, the last winner goes first (alias: n)",
	"show                 print the board (alias: s)",
	"help                 print this help (alias: h)",
	"quit                 leave (alias: q)",
}

// Command - a parsed input line.
type Command struct {
	Action string
	Args   []string
}

// ParseCommand - splits a line into an action and its arguments. Blank lines yield false.
func ParseCommand(line string) (*Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	action := strings.ToLower(fields[0])
	if full, ok := aliases[action]; ok {
		action = full
	}

	return &Command{Action: action, Args: fields[1:]}, true
}

// Response - what the console prints after a command.
type Response struct {
	Action   string           `json:"action"`
	Snapshot *entity.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
	Commands []string         `json:"commands,omitempty"`
}

func (that *Server) sendMessage(writer io.Writer, response Response) error {
	if that.format == FormatJSON {
		if err := json.NewEncoder(writer).Encode(response); err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}

		return nil
	}

	if _, err := io.WriteString(writer, renderText(response)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func (that *Server) sendSnapshot(writer io.Writer, action string, snapshot entity.Snapshot) error {
	return that.sendMessage(writer, Response{Action: action, Snapshot: &snapshot})
}

func (that *Server) sendErrorResponse(writer io.Writer, action, errorMsg string) error {
	if err := that.sendMessage(writer, Response{Action: action, Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

func renderText(response Response) string {
	var builder strings.Builder

	if response.Error != "" {
		builder.WriteString("error: " + response.Error + "\n")
	}

	for _, line := range response.Commands {
		builder.WriteString(line + "\n")
	}

	if response.Snapshot != nil {
		builder.WriteString(renderBoard(response.Snapshot))
		builder.WriteString(renderStatus(response.Snapshot))
		builder.WriteString(renderControls(response.Snapshot))
	}

	return builder.String()
}

func renderBoard(snapshot *entity.Snapshot) string {
	var builder strings.Builder

	builder.WriteString("    0   1   2\n")
	for row := 0; row < entity.BoardSize; row++ {
		if row > 0 {
			builder.WriteString("   ---+---+---\n")
		}

		marks := make([]string, 0, entity.BoardSize)
		for column := 0; column < entity.BoardSize; column++ {
			mark := snapshot.Cells[row*entity.BoardSize+column]
			if mark == entity.MarkNone {
				mark = " "
			}
			marks = append(marks, " "+string(mark)+" ")
		}

		fmt.Fprintf(&builder, "%d  %s\n", row, strings.Join(marks, "|"))
	}

	return builder.String()
}

func renderStatus(snapshot *entity.Snapshot) string {
	switch snapshot.Status {
	case entity.StatusWon:
		winner := "nobody"
		if snapshot.LastWinner != nil {
			winner = snapshot.LastWinner.String()
		}
		return "Game over\nThe game has been won by " + winner + "\n"
	case entity.StatusFinished:
		return "Game over\nThe board is full, nobody won\n"
	case entity.StatusStalemate:
		return fmt.Sprintf("%s (%s) to play\nThe game cannot be won by either player\n",
			capitalize(snapshot.CurrentPlayer.String()), snapshot.CurrentPlayer.Mark())
	default:
		return fmt.Sprintf("%s (%s) to play\n",
			capitalize(snapshot.CurrentPlayer.String()), snapshot.CurrentPlayer.Mark())
	}
}

// renderControls - lists only the commands the current state allows.
func renderControls(snapshot *entity.Snapshot) string {
	controls := make([]string, 0, 4)

	if snapshot.Status.IsAcceptingMoves() {
		controls = append(controls, "move <column> <row>")
	}
	if snapshot.CanUndo {
		controls = append(controls, actionUndo)
	}
	if snapshot.CanRedo {
		controls = append(controls, actionRedo)
	}
	controls = append(controls, actionNew)

	return "[" + strings.Join(controls, "] [") + "]\n"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
