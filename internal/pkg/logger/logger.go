// Package logger is a thin context-aware facade over zap. Until Init is
// called all output is discarded, which keeps tests quiet.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = zap.NewNop().Sugar()

// Init replaces the no-op logger with a production zap logger at the
// given level ("debug", "info", "warn", "error").
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	sugar = l.Sugar()
	return nil
}

// The ctx argument is accepted on every call so request-scoped fields can
// be attached later without touching call sites.

func Debugf(_ context.Context, format string, args ...interface{}) {
	sugar.Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	sugar.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	sugar.Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	sugar.Errorf(format, args...)
}

func Error(_ context.Context, args ...interface{}) {
	sugar.Error(args...)
}

func Fatal(_ context.Context, args ...interface{}) {
	sugar.Fatal(args...)
}
