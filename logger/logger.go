package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Init builds the process logger. Verbose runs use the development config at
// debug level, every other run the production config at warn level. Output
// always goes to stderr so the report on stdout is never interleaved with
// diagnostics.
func Init(verbose bool) error {
	var base zap.Config
	if verbose {
		base = zap.NewDevelopmentConfig()
		base.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	} else {
		base = zap.NewProductionConfig()
		base.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		base.Encoding = "console"
		base.Sampling = nil
		base.EncoderConfig.CallerKey = ""
	}

	base.EncoderConfig.TimeKey = "timestamp"
	base.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	base.DisableStacktrace = true
	base.OutputPaths = []string{"stderr"}
	base.ErrorOutputPaths = []string{"stderr"}

	l, err := base.Build()
	if err != nil {
		logger = zap.NewNop()
		return fmt.Errorf("failed to build logger: %w", err)
	}

	logger = l
	return nil
}

// L returns the process logger, initializing a quiet one when Init was never called.
func L() *zap.Logger {
	if logger == nil {
		_ = Init(false)
	}
	return logger
}

func Sync() { _ = L().Sync() }
