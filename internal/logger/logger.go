// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the class-reports server and its admin CLI.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Err,
// Fatal, ...) is available on *Logger. Request-scoped loggers are attached
// to the context by the HTTP middleware and retrieved with FromContext or
// FromRequest.
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

// NewLogger builds the JSON logger used by long-running components.
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewConsoleLogger builds a human-readable logger for the admin CLI.
// Only warnings and errors are printed unless verbose is set.
func NewConsoleLogger(role string, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return newLogger(w, role, level)
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with extra fields
// without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches l to ctx so that FromContext can retrieve it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog's default (or disabled) logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
