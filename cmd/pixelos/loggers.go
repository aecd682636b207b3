// Copyright © 2026 Pixelos contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/pixelos/loggers.go
// Summary: Per-app log files under the configured log directory.

package main

import (
	"io"
	"log"
	"sync"

	"github.com/framegrace/pixelos/pixel"
)

// loggerSet hands each app its own append-only log file, created lazily and
// closed together at shutdown. A failed open degrades to a nil logger.
type loggerSet struct {
	dir     string
	mu      sync.Mutex
	files   []io.WriteCloser
	loggers map[string]*pixel.Logger
}

func newLoggerSet(dir string) *loggerSet {
	return &loggerSet{dir: dir, loggers: make(map[string]*pixel.Logger)}
}

// For returns the logger for an app, opening its file on first use.
func (s *loggerSet) For(app string) *pixel.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.loggers[app]; ok {
		return l
	}
	w, err := pixel.OpenLogFile(s.dir, app)
	if err != nil {
		log.Printf("Logs: open for '%s' failed: %v", app, err)
		s.loggers[app] = nil
		return nil
	}
	s.files = append(s.files, w)
	l := pixel.NewLogger(app, w)
	s.loggers[app] = l
	return l
}

// Close flushes and closes every open log file.
func (s *loggerSet) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		f.Close()
	}
	s.files = nil
}
