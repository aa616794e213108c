package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/resample/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := logging.NewSlog(slog.New(h))

	l.Debug("fold scored", "fold", 3, "score", 0.75)
	l.Info("done")
	l.Warn("careful")
	l.Error("failed", "err", "boom")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=\"fold scored\" fold=3 score=0.75")
	assert.Contains(t, out, "level=INFO msg=done")
	assert.Contains(t, out, "level=WARN msg=careful")
	assert.Contains(t, out, "level=ERROR msg=failed err=boom")
}

func TestSlogLogger_NilFallsBackToDefault(t *testing.T) {
	assert.NotPanics(t, func() { logging.NewSlog(nil).Debug("ignored") })
}

func TestNopLogger(t *testing.T) {
	var l logging.Logger = logging.NewNop()
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}
