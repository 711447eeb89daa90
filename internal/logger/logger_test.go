package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jwebster45206/wizard-trials/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Format(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	l := Setup(&config.Config{Environment: "production", LogLevel: slog.LevelInfo}, &buf)
	l.Info("loaded", "locations", 2)
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "production logs should be JSON: %s", buf.String())

	buf.Reset()
	l = Setup(&config.Config{Environment: "development", LogLevel: slog.LevelInfo}, &buf)
	l.Info("loaded", "locations", 2)
	assert.Contains(t, buf.String(), "msg=loaded")
	assert.Contains(t, buf.String(), "locations=2")
}

func TestSetup_Level(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	l := Setup(&config.Config{LogLevel: slog.LevelWarn}, &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	WithError(WithSessionID(base, "abc"), errors.New("boom")).Info("step")
	assert.Contains(t, buf.String(), "session_id=abc")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestOutput(t *testing.T) {
	w, closeFn, err := Output(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "game.log")
	w, closeFn, err = Output(&config.Config{LogFile: path})
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))

	_, _, err = Output(&config.Config{LogFile: filepath.Join(t.TempDir(), "missing", "game.log")})
	assert.Error(t, err)
}
