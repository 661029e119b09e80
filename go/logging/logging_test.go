package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json to file with fields", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "log.json")
		logger, err := NewLogger(&Opts{
			Level:    LevelInfo,
			Format:   FormatJSON,
			FilePath: path,
			Fields:   []string{"tool:icons"},
		})
		require.NoError(t, err)
		logger.Debug("hidden")
		logger.Info("saved icon", "size", 72)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 1)
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
		require.Equal(t, "saved icon", record["msg"])
		require.Equal(t, "icons", record["tool"])
		require.EqualValues(t, 72, record["size"])
	})

	t.Run("every format is recognized", func(t *testing.T) {
		t.Parallel()
		for _, format := range []string{FormatJSON, FormatText, FormatRaw} {
			_, err := NewLogger(&Opts{Format: format, FilePath: filepath.Join(t.TempDir(), "log")})
			require.NoError(t, err, format)
		}
	})

	t.Run("unrecognized format", func(t *testing.T) {
		t.Parallel()
		_, err := NewLogger(&Opts{Format: "xml"})
		require.ErrorContains(t, err, "unrecognized format")
	})

	t.Run("invalid field", func(t *testing.T) {
		t.Parallel()
		_, err := NewLogger(&Opts{Format: FormatRaw, Fields: []string{"novalue"}})
		require.ErrorContains(t, err, "invalid field format")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, parseLevel(tt.level), tt.level)
	}
}

func TestRawHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRawHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.With("run", 1).WithGroup("icon").Debug("saved", "size", 72, slog.Group("font", "name", "goregular"))
	logger.Info("done")

	require.Equal(t, "saved run=1 icon.size=72 icon.font.name=goregular\ndone\n", buf.String())
}

func TestRawHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRawHandler(&buf, nil))
	logger.Debug("hidden")
	logger.Warn("shown")
	require.Equal(t, "shown\n", buf.String())
}
