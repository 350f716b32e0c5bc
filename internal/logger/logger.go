package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. Init must be called once before use.
var Log *zap.Logger

func Init() {
	if Log != nil {
		return
	}
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		Log = zap.NewNop()
		return
	}
	Log = logger
}

// Sync flushes any buffered log entries. Safe to call on shutdown.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
