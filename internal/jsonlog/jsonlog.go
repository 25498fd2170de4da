// Package jsonlog is the structured logger used by the cmd/jetvalue CLI.
// The library's encode path does not log.
//
// Grounded on trufflehog's pkg/log level/encoder-config idiom
// (defaultEncoderConfig, a package-level level enabler), built directly
// on zap rather than zap wrapped in a facade, since this package has no
// logr-interop needs of its own.
package jsonlog

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// SetLevel adjusts the minimum level for loggers returned by New,
// including ones already constructed (the level is shared, not
// snapshotted).
func SetLevel(lvl zapcore.Level) {
	globalLevel.SetLevel(lvl)
}

func defaultEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

var (
	once sync.Once
	root *zap.Logger
)

// New returns the process-wide logger, writing JSON-encoded entries to
// stderr at or above the level set by SetLevel. Repeated calls return
// the same *zap.Logger.
func New() *zap.Logger {
	once.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(defaultEncoderConfig()),
			zapcore.Lock(zapcore.AddSync(os.Stderr)),
			globalLevel,
		)
		root = zap.New(core)
	})
	return root
}

// Named returns a child of the process-wide logger scoped to component,
// the way cmd/jetvalue tags its subcommands.
func Named(component string) *zap.Logger {
	return New().Named(component)
}

// Sync flushes any buffered log entries. Callers should defer it from
// main.
func Sync() error {
	if root == nil {
		return nil
	}
	return root.Sync()
}
