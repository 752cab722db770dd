// Package log provides file-backed logging built on zerolog.
//
// Stdout belongs to rendered output, so the logger never writes to the
// terminal; everything goes to the log file under the app data directory.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cmdtree-tools/cli/internal/domain"
)

// ParseLevel converts a string to a zerolog level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns WarnLevel if the string is not recognized.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// Logger writes structured log lines to a file.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init initializes the global logger with the specified file.
func Init(logPath string, minLevel zerolog.Level) error {
	var err error
	once.Do(func() {
		l, e := New(logPath, minLevel)
		if e != nil {
			err = e
			return
		}
		defaultLoggerMu.Lock()
		defaultLogger = l
		defaultLoggerMu.Unlock()
	})
	return err
}

// New creates a logger that writes to the specified file.
func New(logPath string, minLevel zerolog.Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	zl := zerolog.New(file).Level(minLevel).With().Timestamp().Logger()

	return &Logger{zl: zl, file: file}, nil
}

// Close closes the logger's file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// With returns a logger tagged with a component name.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Str("component", component).Logger(), file: l.file}
}

func (l *Logger) Debug(format string, args ...any) {
	if l == nil {
		return
	}
	l.zl.Debug().Msgf(format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	if l == nil {
		return
	}
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	if l == nil {
		return
	}
	l.zl.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	if l == nil {
		return
	}
	l.zl.Error().Msgf(format, args...)
}

// Convenience functions for the global logger.

func Debug(format string, args ...any) { getDefault().Debug(format, args...) }
func Info(format string, args ...any)  { getDefault().Info(format, args...) }
func Warn(format string, args ...any)  { getDefault().Warn(format, args...) }
func Error(format string, args ...any) { getDefault().Error(format, args...) }

func getDefault() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Close closes the global logger.
func Close() error {
	defaultLoggerMu.RLock()
	l := defaultLogger
	defaultLoggerMu.RUnlock()
	return l.Close()
}

// NopLogger discards all messages. Useful for testing or when logging is
// disabled.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}

// Verify both implement domain.Logger.
var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
