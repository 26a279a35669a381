// Package log is the process-wide structured logger. It wraps a zap
// SugaredLogger so packages can log without threading a logger through
// every call.
package log

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

func init() {
	// $CRYPTEM_LOG_LEVEL applies before any flag parsing, which also keeps
	// tests quiet unless asked otherwise.
	level := "error"
	if s := os.Getenv("CRYPTEM_LOG_LEVEL"); s != "" {
		level = s
	}
	Init(level, "stderr")
}

func Logger() *zap.SugaredLogger { return log }

// Init replaces the logger. Output is "stdout", "stderr", a file path or
// any URL with a registered zap sink.
func Init(logLevel, output string) {
	logger, err := newConfig(logLevel, output).Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log = logger.WithOptions(zap.AddCallerSkip(1)).Sugar()
	log.Debugf("logger construction succeeded at level %s with output %s", logLevel, output)
}

// ValidLevel reports whether s names a level Init understands.
func ValidLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error", "fatal":
		return true
	}
	return false
}

func levelFromString(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

func newConfig(logLevel, output string) zap.Config {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime: func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(ts.Local().Format(time.RFC3339))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return zap.Config{
		Level:            zap.NewAtomicLevelAt(levelFromString(logLevel)),
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}
}

// Debugf sends a formatted debug level log message
func Debugf(template string, args ...interface{}) {
	log.Debugf(template, args...)
}

// Infof sends a formatted info level log message
func Infof(template string, args ...interface{}) {
	log.Infof(template, args...)
}

// Warnf sends a formatted warn level log message
func Warnf(template string, args ...interface{}) {
	log.Warnf(template, args...)
}

// Errorf sends a formatted error level log message
func Errorf(template string, args ...interface{}) {
	log.Errorf(template, args...)
}

// Debugw sends a key-value formatted debug level log message
func Debugw(msg string, keysAndValues ...interface{}) {
	log.Debugw(msg, keysAndValues...)
}

// Infow sends a key-value formatted info level log message
func Infow(msg string, keysAndValues ...interface{}) {
	log.Infow(msg, keysAndValues...)
}

// Warnw sends a key-value formatted warn level log message
func Warnw(msg string, keysAndValues ...interface{}) {
	log.Warnw(msg, keysAndValues...)
}

// Errorw sends a key-value formatted error level log message
func Errorw(msg string, keysAndValues ...interface{}) {
	log.Errorw(msg, keysAndValues...)
}
