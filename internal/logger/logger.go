// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// cftunnel CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// The CLI never logs to the terminal: user-facing output is rendered by the
// cli package, and diagnostics go to a JSON log file in the data directory.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FileName is the diagnostic log written inside the data directory. It is
// distinct from the connector log owned by cloudflared.
const FileName = "cftunnel.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger

	file *os.File
}

// NewLogger constructs a *Logger for the given role label that writes JSON
// entries to w at the given minimum level.
//
// Every entry carries a "role" field, a timestamp, and a "func" caller field
// with the fully-qualified function name.
func NewLogger(role string, w io.Writer, level zerolog.Level) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// NewClientLogger opens (or creates) the diagnostic log in dataDir and returns
// a logger appending to it. levelName is a zerolog level name; an unknown or
// empty name falls back to info.
//
// When the directory or file cannot be opened, output is discarded so the CLI
// keeps working on read-only or missing home directories.
func NewClientLogger(role, dataDir, levelName string) *Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return NewLogger(role, io.Discard, level)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return NewLogger(role, io.Discard, level)
	}

	l := NewLogger(role, logFile, level)
	l.file = logFile
	return l
}

// Close releases the log file, if any. It is safe to call on any Logger.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child never owns the parent's file.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// WithContext attaches the logger to ctx so that FromContext can retrieve it
// further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
