package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"ERROR":  slog.LevelError,
		"warn":   slog.LevelWarn,
		" info ": slog.LevelInfo,
		"DEBUG":  slog.LevelDebug,
		"":       slog.LevelInfo,
		"bogus":  slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN")
	logger.Info("hidden")
	logger.Error("shown", "sheet", "Sheet1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "sheet=Sheet1")
	assert.Contains(t, out, "time=")
}

func TestOpen_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "text_similarity.log")

	first, err := Open(path, "INFO")
	require.NoError(t, err)
	first.Logger.Info("first run")
	require.NoError(t, first.Close())
	require.NoError(t, first.Close())

	second, err := Open(path, "INFO")
	require.NoError(t, err)
	second.Logger.Info("second run")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}
