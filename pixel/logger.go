// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: pixel/logger.go
// Summary: Per-app leveled log sink. Handed to apps at construction so tests
// can swap the destination without any global registry.

package pixel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger writes leveled, timestamped lines to a single append-only sink.
// Every app owns one; the scheduler and the test runner only read the
// resulting stream. A nil Logger discards everything.
type Logger struct {
	name string
	mu   sync.Mutex
	w    io.Writer
}

// NewLogger returns a logger for the named app writing to w.
func NewLogger(name string, w io.Writer) *Logger {
	return &Logger{name: name, w: w}
}

// Name returns the app name the logger was created for.
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

func (l *Logger) write(level, format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.w, "[%s] %s: %s\n", ts, level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any)   { l.write("DEBUG", format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.write("INFO", format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.write("WARNING", format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.write("ERROR", format, args...) }

// OpenLogFile opens (appending) the log file for an app under dir, creating
// the directory as needed. The filename is the sanitized app name, matching
// what the launcher and the test tooling expect.
func OpenLogFile(dir, name string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, SafeLogName(name)+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

// SafeLogName lowercases name and replaces anything outside [a-z0-9-_]
// with an underscore.
func SafeLogName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
