package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/linsys/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewLogger(&buf, "info", true)

	log.Info("solved",
		logging.String("method", "gauss"),
		logging.Int("n", 3),
		logging.Float64("residual", 0.5),
		logging.Bool("pivot", true),
	)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "solved", rec["message"])
	assert.Equal(t, "gauss", rec["method"])
	assert.Equal(t, 3.0, rec["n"])
	assert.Equal(t, 0.5, rec["residual"])
	assert.Equal(t, true, rec["pivot"])
	assert.Contains(t, rec, "time")
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewLogger(&buf, "info", true)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Error("failed", errors.New("boom"), logging.String("op", "det"))
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"op":"det"`)
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewLogger(&buf, "debug", false)
	log.Debug("iterating", logging.Int("iterations", 12))

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "iterating")
	assert.Contains(t, out, "iterations=12")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, zerolog.Disabled, logging.ParseLevel("disabled"))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("loud"))
}

func TestNop(t *testing.T) {
	var l logging.Logger = logging.Nop()
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Error("y", errors.New("z"), logging.Err(errors.New("w")))
	})
}
