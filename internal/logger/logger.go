package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DevEnv  = "dev"
	ProdEnv = "prod"
	CLIEnv  = "cli"
)

var logger = zap.NewNop()

// Init replaces the no-op logger. The cli env only lets warnings through
// so that the interactive session is not interleaved with log lines.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	switch env {
	case DevEnv:
		l, err = zap.NewDevelopment()
	case ProdEnv:
		l, err = zap.NewProduction()
	case CLIEnv, "":
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = cfg.Build()
	default:
		return errors.Errorf("unknown log env %q", env)
	}
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func Sync() {
	_ = logger.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
