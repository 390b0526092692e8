package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a config file with every field set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nconsole:\n  prompt: \"ttt> \"\n  format: json\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "ttt> ", conf.Console.Prompt)
		assert.Equal(t, "json", conf.Console.Format)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// Given: no config file and no overrides
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading it
		conf, err := Load(path)

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "> ", conf.Console.Prompt)
		assert.Equal(t, "text", conf.Console.Format)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: an environment variable and no file
		t.Setenv("CONSOLE_FORMAT", "json")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment value wins
		require.NoError(t, err)
		assert.Equal(t, "json", conf.Console.Format)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		// Given: a file that is not YAML
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [\n"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: loading fails
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
