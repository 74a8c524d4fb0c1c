package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info by default", false, false},
		{"debug enabled", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Options{Debug: tt.debug, Output: &buf})

			logger.Debug("debug entry")
			logger.Info("info entry")

			out := buf.String()
			assert.Contains(t, out, "info entry")
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug entry"))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{JSON: true, Output: &buf})

	logger.Info("deck generated", zap.Int("cards", 3))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "deck generated", entry["msg"])
	assert.Equal(t, "glossyflash", entry["logger"])
	assert.EqualValues(t, 3, entry["cards"])
}

func TestTee(t *testing.T) {
	var out, sink bytes.Buffer
	logger := Tee(New(Options{Output: &out}), zapcore.AddSync(&sink))

	logger.Debug("hidden")
	logger.Warn("copied", zap.String("language", "French"))

	assert.Contains(t, out.String(), "copied")
	assert.Contains(t, sink.String(), "copied")
	assert.Contains(t, sink.String(), "WARN")
	assert.Contains(t, sink.String(), "French")
	assert.NotContains(t, sink.String(), "hidden", "sink follows the base level")
}
