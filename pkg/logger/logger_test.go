package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KlienGumapac/freedomewall/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Init(filepath.Join(dir, "config.toml")))

	Init(false)
	Info("feed loaded", "count", 3)
	Debug("hidden at info level")

	data, err := os.ReadFile(filepath.Join(dir, "wallctl.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "feed loaded")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestInitVerbose(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Init(filepath.Join(dir, "config.toml")))

	Init(true)
	Debug("request sent", "method", "GET")

	data, err := os.ReadFile(filepath.Join(dir, "wallctl.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "request sent")
}

func TestUninitializedLoggerIsSafe(t *testing.T) {
	saved := logger
	logger = nil
	defer func() { logger = saved }()

	assert.NotPanics(t, func() {
		Debug("x")
		Info("x")
		Warn("x")
		Error("x")
	})
}
