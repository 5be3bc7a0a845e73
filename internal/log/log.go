// Package log builds the zap logger used by the unfold command.
package log

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels lists the accepted verbosity names.
var Levels = []string{"debug", "info", "warn", "error"}

// NewLogger returns a console logger writing to stderr at the given verbosity.
func NewLogger(verbosity string) (*zap.SugaredLogger, error) {
	logLevel, err := zapcore.ParseLevel(verbosity)
	if err != nil {
		return nil, fmt.Errorf("log: cannot parse verbosity %q: %w", verbosity, err)
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	// Timestamp format (ISO8601) and time zone (UTC)
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z0700"))
	}
	config.Level.SetLevel(logLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
