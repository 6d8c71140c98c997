package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(name))
		})
	}
}

func TestSourceHandler_AddsSourceAtOrAboveFloor(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := slog.New(NewSourceHandler(base, slog.LevelWarn))

	log.Info("customer created", "customer_id", "C-001")
	assert.NotContains(t, buf.String(), "source=")

	buf.Reset()
	log.Warn("odp port capacity low", "odp_id", 4)
	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestSourceHandler_WithAttrsKeepsLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).With("component", "billing")

	log.Error("billing run failed")
	out := buf.String()
	assert.Contains(t, out, "component=billing")
	assert.Contains(t, out, "source=")
}

func TestSlogLogger_WithAndComponent(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	log := FromSlog(base).Component("repository").With("table", "olts")
	log.Infow("listing records", "limit", 100)

	out := buf.String()
	assert.Contains(t, out, "component=repository")
	assert.Contains(t, out, "table=olts")
	assert.Contains(t, out, "limit=100")
}
