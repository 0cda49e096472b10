package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, log.DebugLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLoggerContextFallback(t *testing.T) {
	if got := loggerFromContext(context.Background()); got == nil {
		t.Error("loggerFromContext must never return nil")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug output should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info output missing: %q", out)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Converted diagram")

	out := buf.String()
	if !strings.Contains(out, "Converted diagram") {
		t.Errorf("missing message: %q", out)
	}
	if !strings.Contains(out, "s)") {
		t.Errorf("missing elapsed duration: %q", out)
	}
}
