package kitelog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Debug enables debug level output, otherwise the minimum level is info.
	Debug bool

	// JSON selects the JSON encoder instead of the console encoder.
	JSON bool
}

// New builds a logger with datetime and caller information that splits output
// to stdout and stderr based on level: errors and above go to stderr, the rest to stdout.
func New(opts Options) *zap.Logger {
	return NewWithSyncers(opts, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
}

// NewWithSyncers is like New but writes to the provided sinks.
func NewWithSyncers(opts Options, out, errOut zapcore.WriteSyncer) *zap.Logger {
	minLevel := zapcore.InfoLevel
	if opts.Debug {
		minLevel = zapcore.DebugLevel
	}

	isErrorLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})
	isInfoLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl < zapcore.ErrorLevel
	})

	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.RFC3339TimeEncoder

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(config)
	} else {
		config.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(config)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, errOut, isErrorLevel),
		zapcore.NewCore(encoder, out, isInfoLevel),
	)
	return zap.New(core, zap.AddCaller())
}

// OrNop returns l, or a no-op logger if l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
