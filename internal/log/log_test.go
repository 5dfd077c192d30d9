package log

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func captureAt(t *testing.T, l slog.Level) (*slog.Logger, *bytes.Buffer) {
	prev := Level()
	t.Cleanup(func() { SetLevel(prev) })
	SetLevel(l)

	buf := &bytes.Buffer{}
	return New(buf), buf
}

func TestFiltersUnknownSections(t *testing.T) {
	logger, buf := captureAt(t, slog.LevelDebug)

	logger.Debug("hidden", "section", "backend")
	logger.Info("hidden too")
	assert.Empty(t, buf.String())

	logger.Debug("shown", "section", "annot")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestWithSectionAttr(t *testing.T) {
	logger, buf := captureAt(t, slog.LevelDebug)

	logger.With("section", "config").Debug("loaded")
	assert.Contains(t, buf.String(), `"section":"config"`)
	assert.Contains(t, buf.String(), `"msg":"loaded"`)

	buf.Reset()
	logger.With("section", "elsewhere").Debug("dropped")
	assert.Empty(t, buf.String())
}

func TestWarningsAlwaysPass(t *testing.T) {
	logger, buf := captureAt(t, slog.LevelDebug)
	logger.Warn("careful")
	assert.Contains(t, buf.String(), `"msg":"careful"`)
}

func TestLevel(t *testing.T) {
	logger, buf := captureAt(t, slog.LevelError)
	logger.Warn("below level", "section", "annot")
	assert.Empty(t, buf.String())
	logger.Error("at level", "section", "annot")
	assert.Contains(t, buf.String(), "at level")
}
