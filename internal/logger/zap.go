package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

const defaultZapLevel = zapcore.InfoLevel

// ParseLevel converts a level name. Unknown names fall back to info.
func ParseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

func newConsoleCore(level zap.AtomicLevel, w io.Writer) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(cfg)
	ws := zapcore.Lock(zapcore.AddSync(w))
	return zapcore.NewCore(encoder, ws, level)
}

// New builds a console logger writing to w.
func New(levelStr string, w io.Writer) *Logger {
	level := zap.NewAtomicLevelAt(ParseLevel(levelStr))
	return &Logger{
		SugaredLogger: zap.New(newConsoleCore(level, w)).Sugar(),
		level:         level,
	}
}

// SetLevel changes the level at runtime.
func (l *Logger) SetLevel(levelStr string) {
	l.level.SetLevel(ParseLevel(levelStr))
}

// Zap returns the structured logger for packages that take a *zap.Logger.
func (l *Logger) Zap() *zap.Logger {
	return l.Desugar()
}
