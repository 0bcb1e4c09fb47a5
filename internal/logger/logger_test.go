package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug":  DebugLevel,
		"INFO":   InfoLevel,
		" warn ": WarnLevel,
		"Error":  ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := ParseLevel("verbose")
	require.ErrorContains(t, err, "verbose")
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(WithLoggingLevel(WarnLevel), WithOutputPaths(path))
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "kept", entry["message"])
	require.Equal(t, "warn", entry["level"])
}

func TestNewDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	log, err := New(WithOutputPaths(path), WithLoggingLevel(DebugLevel))
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(DebugLevel.zapLevel()))
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(WithWriter(&buf), WithLoggingLevel(DebugLevel))
	require.NoError(t, err)
	log.Debug("decoded tick file")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "decoded tick file", entry["message"])
	require.Equal(t, "debug", entry["level"])
}
