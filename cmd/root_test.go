// File: cmd/root_test.go
package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_VersionFlag(t *testing.T) {
	out, err := executeCommand(t, nil, "--version")
	require.NoError(t, err)
	assert.Equal(t, "typogen version "+Version+"\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "typogen version "+Version+"\n", out)
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, err := executeCommand(t, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "typogen simulates a human typist")
	for _, sub := range []string{"generate", "demo", "batch", "report", "follow", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCmd_ConfigFile(t *testing.T) {
	t.Run("values from the file reach the command", func(t *testing.T) {
		path := createTempConfig(t, `
typo:
  error_rate: 0
  word_drop_rate: 0
  space_error_rate: 0
`)
		out, err := executeCommand(t, nil, "-c", path, "generate", "the", "cat", "sat")
		require.NoError(t, err)
		assert.Equal(t, "the cat sat\n", out)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := createTempConfig(t, "batch:\n  workers: 0\n")
		_, err := executeCommand(t, nil, "-c", path, "generate", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load or validate config")
	})

	t.Run("an explicit missing file is an error", func(t *testing.T) {
		_, err := executeCommand(t, nil, "-c", "/nonexistent/typogen.yaml", "generate", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TYPOGEN_TYPO_ERROR_RATE", "0")
		t.Setenv("TYPOGEN_TYPO_WORD_DROP_RATE", "0")
		t.Setenv("TYPOGEN_TYPO_SPACE_ERROR_RATE", "0")
		out, err := executeCommand(t, nil, "generate", "quiet", "keyboard")
		require.NoError(t, err)
		assert.Equal(t, "quiet keyboard\n", out)
	})
}

func TestGetConfigFromContext(t *testing.T) {
	_, err := getConfigFromContext(context.Background())
	assert.Error(t, err)

	cfg := newTestConfig()
	got, err := getConfigFromContext(context.WithValue(context.Background(), configKey, cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}
