package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	ComponentKey = "component"
)

// Logger bundles the logr front end with the zap core that backs it
type Logger struct {
	logr.Logger
	zap  *zap.Logger
	file *os.File
}

// ParseLevel converts a level name from the config into a zap level
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New creates a JSON logger writing to w at the given minimum level
func New(w io.Writer, level zapcore.Level) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))

	return &Logger{
		Logger: zapr.NewLogger(zl),
		zap:    zl,
	}
}

// NewFile opens (or creates) path in append mode and logs to it.
// The terminal belongs to the TUI, so logs never go to stderr while it runs.
func NewFile(path string, levelName string) (*Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := New(f, level)
	l.file = f
	return l, nil
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return &Logger{Logger: logr.Discard(), zap: zap.NewNop()}
}

// Close flushes buffered entries and closes the log file, if any
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	if err := l.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		return fmt.Errorf("failed to sync logger: %w", err)
	}
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Component returns a child logger tagged with the component name
func (l *Logger) Component(name string) logr.Logger {
	return l.Logger.WithValues(ComponentKey, name)
}

// WithLogger returns a new context carrying log
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger
func FromContext(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return logr.Discard()
}

// isIgnorableSyncError returns true for Sync errors raised by pipes and TTYs
func isIgnorableSyncError(err error) bool {
	return errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) ||
		errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF)
}
