package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func TestRunApp(t *testing.T) {
	// Given: a text console config and a scripted session
	conf := &config.Config{
		LogLevel: "info",
		Console:  config.Console{Prompt: "> ", Format: "text"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	input := strings.NewReader("m 0 0\nm 1 1\nm 0 1\nm 1 0\nm 0 2\nnew\nquit\n")

	// When: the app runs to the end of the script
	var output bytes.Buffer
	err := RunApp(logger, conf, input, &output)

	// Then: the win is shown and the winner opens the next game
	require.NoError(t, err)
	assert.Contains(t, output.String(), "The game has been won by player 1")
	assert.True(t, strings.HasSuffix(output.String(), "Player 1 (X) to play\n[move <column> <row>] [new]\n> "))
}
