package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file that lets the computer open
		path := writeConfig(t, "log-level: debug\nlog-output: stdout\nhuman-mark: o\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "stdout", conf.LogOutput)

		mark, err := conf.GetHumanMark()
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, mark)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "stderr", conf.LogOutput)
		assert.Equal(t, "X", conf.HumanMark)
	})

	t.Run("Environment overrides defaults without a file", func(t *testing.T) {
		// Given: HUMAN_MARK set in the environment
		t.Setenv("HUMAN_MARK", "O")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, "O", conf.HumanMark)
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		// Given: a config with an invalid human mark
		path := writeConfig(t, "human-mark: Z\n")

		// When: loading it
		conf, err := Load(path)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Nil(t, conf)
	})

	t.Run("MustLoad panics on a bad config", func(t *testing.T) {
		path := writeConfig(t, "human-mark: Z\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
