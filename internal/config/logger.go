package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Level LogLevel `yaml:"level"`
}

type LoggingConfig struct {
	Console LoggerConfig `yaml:"console"`
}

// Prepare returns our standard logger writing to out. The command passes stderr so
// that logs never mix with results printed to stdout. With debug set the level is
// forced to debug.
func (conf *LoggingConfig) Prepare(out io.Writer, debug bool) *zap.Logger {
	level := conf.Console.Level
	if debug {
		level = LogLevelDebug
	}

	var enabler zapcore.LevelEnabler
	switch level {
	case LogLevelDebug:
		enabler = zapcore.DebugLevel
	case LogLevelNormal:
		enabler = zapcore.InfoLevel
	default:
		return zap.NewNop()
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(out), enabler)
	return zap.New(core)
}
