// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// contact-keeper application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the server logger: JSON lines on stdout at debug level,
// each entry carrying role, time and the calling function as "func".
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel, true)
}

// NewConsoleLogger builds a human-readable logger writing to w. It is used by
// the command-line client, where JSON output would mix with command results.
// Only warnings and errors are emitted.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}, role, zerolog.WarnLevel, false)
}

// newLogger builds a logger with its own minimum level. Child loggers
// inherit it.
func newLogger(w io.Writer, role string, level zerolog.Level, withCaller bool) *Logger {
	ctx := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp()
	if withCaller {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

func init() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default context
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithField returns a copy of ctx whose logger carries key=value on every
// subsequent entry.
func WithField(ctx context.Context, key, value string) context.Context {
	l := log.Ctx(ctx).With().Str(key, value).Logger()
	return l.WithContext(ctx)
}
