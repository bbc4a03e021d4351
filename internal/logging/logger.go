package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel represents the verbosity names accepted in configuration
type LogLevel string

const (
	LogLevelError LogLevel = "ERROR"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelDebug LogLevel = "DEBUG"
)

// ParseLevel maps a configured level name onto a slog level. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
	switch LogLevel(strings.ToUpper(strings.TrimSpace(level))) {
	case LogLevelError:
		return slog.LevelError
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New builds a text logger writing time, level and message entries to w
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Sink is the process-wide log destination. It is opened once at startup and closed on exit.
type Sink struct {
	Logger *slog.Logger

	file      *os.File
	closeOnce sync.Once
	closeErr  error
}

// Open appends to the log file at path, creating it and its directory if needed
func Open(path, level string) (*Sink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return &Sink{
		Logger: New(file, level),
		file:   file,
	}, nil
}

// Close flushes and closes the log file. It is safe to call more than once.
func (s *Sink) Close() error {
	s.closeOnce.Do(func() {
		if err := s.file.Sync(); err != nil {
			s.closeErr = err
		}
		if err := s.file.Close(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
	})
	return s.closeErr
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
