package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"karaku/backend/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNew_LowercasesLevelAndFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Warn("translation saved", "module", "service", "result", "ok")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, "module=service")
}
