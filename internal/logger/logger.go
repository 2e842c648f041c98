// Package logger wraps zerolog for the users API.
//
// Servers log JSON to stdout, command-line tools log console text to stderr.
// Request handlers pick their logger from the request context, where the
// trace id middleware stores a child logger carrying trace_id.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role. It resets the
// global level to debug; call SetLevel afterwards to narrow it.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return newJSONLogger(os.Stdout, role)
}

func newJSONLogger(w io.Writer, role string) *Logger {
	// report the function name rather than file:line
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewConsoleLogger returns a human readable logger writing to w.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Logger()}
}

// SetLevel applies a textual level such as "info" globally. Empty is a no-op.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)

	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can gain fields without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest is FromContext for r.Context().
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one it returns
// zerolog's disabled default, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
