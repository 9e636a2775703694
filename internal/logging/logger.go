// Package logging builds the zap logger shared by the CLI and the watcher.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level picks the minimum level for a run: debug when verbose, info while
// watching (each regeneration is reported), warn otherwise so a plain run is silent.
func Level(verbose, watch bool) zapcore.Level {
	switch {
	case verbose:
		return zapcore.DebugLevel
	case watch:
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}

// New returns a console logger writing to w at level.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
