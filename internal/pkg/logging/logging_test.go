package logging

import (
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		enabled zapcore.Level
	}{
		{name: "json info", level: "info", format: FormatJSON, enabled: zapcore.InfoLevel},
		{name: "console debug", level: "debug", format: FormatConsole, enabled: zapcore.DebugLevel},
		{name: "unknown format falls back to json", level: "warn", format: "xml", enabled: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	logger, err := NewLogger("loud", FormatJSON)

	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "loud")
}

func TestEchoLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, EchoLevel("debug"))
	assert.Equal(t, log.INFO, EchoLevel("info"))
	assert.Equal(t, log.WARN, EchoLevel("warn"))
	assert.Equal(t, log.ERROR, EchoLevel("error"))
	assert.Equal(t, log.ERROR, EchoLevel("fatal"))
	assert.Equal(t, log.INFO, EchoLevel("nonsense"))
}
