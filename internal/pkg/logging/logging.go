// Package logging builds the service's zap logger from configuration.
package logging

import (
	"fmt"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// NewLogger builds a logger for level ("debug", "info", "warn", "error")
// and format. The console format is for development; anything else is JSON.
func NewLogger(level, format string) (*zap.Logger, error) {
	var cfg zap.Config

	switch format {
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// EchoLevel maps a zap level name to the level of echo's own logger.
// Unknown names fall back to INFO.
func EchoLevel(level string) log.Lvl {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return log.INFO
	}

	switch {
	case lvl <= zapcore.DebugLevel:
		return log.DEBUG
	case lvl == zapcore.InfoLevel:
		return log.INFO
	case lvl == zapcore.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
