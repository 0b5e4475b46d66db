// Package telemetry provides the structured logger used across the
// contiguity packages. It wraps zap the way the original Fortune's-algorithm
// prototype this module grew out of did, minus the HTML log-embedding
// machinery that only made sense inside that prototype's web demo.
package telemetry

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger. A nil *Logger is a valid no-op logger, so
// callers of the core packages are never forced to wire one up.
type Logger struct {
	log *zap.Logger
}

// New builds a console-encoded, color-leveled logger writing to stderr at
// info level.
func New() *Logger {
	return newLogger(zap.InfoLevel)
}

// NewDebug is like New but logs at debug level, used by callers tracing the
// sweep-line and partition debug events.
func NewDebug() *Logger {
	return newLogger(zap.DebugLevel)
}

func newLogger(level zapcore.Level) *Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     rfc3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), level)
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logger{log: zl}
}

func rfc3339TimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(time.RFC3339))
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.log.Error(msg, fields...)
}
