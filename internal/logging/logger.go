package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

// ------------------------------------------------------------------------------------------------------
// Init builds the global logger. level is the textual zap level from the
// LOG_LEVEL environment variable; an empty or unparsable value falls back
// to info.
func Init(level string) error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.CallerKey = "caller"

	if level != "" {
		if parsed, err := zap.ParseAtomicLevel(level); err == nil {
			config.Level = parsed
		}
	}

	var err error
	Logger, err = config.Build()
	if err != nil {
		return err
	}

	return nil
}

// ------------------------------------------------------------------------------------------------------
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
