// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/verdict/internal/config"
)

// NewFile returns a JSON logger appending to path. The TUI owns the
// terminal, so interactive sessions always log to a file.
func NewFile(path, level string) (*zap.Logger, error) {
	if err := config.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return build([]string{path}, level)
}

// NewStderr returns a logger for non-interactive commands.
func NewStderr(level string) (*zap.Logger, error) {
	return build([]string{"stderr"}, level)
}

func build(outputs []string, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = outputs
	zcfg.ErrorOutputPaths = outputs
	zcfg.Sampling = nil
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
