// Package logger provides the debug log sink of a hook. Stdout belongs to the
// host protocol, so a hook logs either to a rotated file or nowhere.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/kamikazebr/claude-hookkit/internal/fsutil"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	MaxLogSizeMB = 1 // per file
	MaxBackups   = 9 // about 10MB in total
)

// Logger wraps a slog.Logger together with the sink it writes to.
type Logger struct {
	log    *slog.Logger
	closer io.Closer
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Open returns a debug-level logger appending to path. The file is rotated
// once it grows past MaxLogSizeMB.
func Open(path string) (*Logger, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	if err := fsutil.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := fsutil.Touch(path, 0o644); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxLogSizeMB,
		MaxBackups: MaxBackups,
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{log: slog.New(handler), closer: sink}, nil
}

func (l *Logger) Slog() *slog.Logger {
	return l.log
}

// Close flushes and closes the sink.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
