// Package logging builds the application logger. Interactive front ends own
// the terminal, so logs normally go to a rotating file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Path   string // log file; empty logs to stderr
	Level  string // debug, info, warn, error
	Prefix string
}

// DefaultPath returns ~/.lcdpong/lcdpong.log, or "" when the home directory
// is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lcdpong", "lcdpong.log")
}

// New creates a logger. The returned closer releases the log file and is
// never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		// 10MB per file, 3 backups, 7 days
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		}
		w, closer = lj, lj
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
