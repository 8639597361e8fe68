// Package log builds the slog.Logger used by fieldgen.
//
// Without a log file, records below error level go to stdout and errors go
// to stderr, so generator output piped from stdout stays clean of failures.
// With a log file, every record goes to the file and stderr.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is below Debug and enables per-field dump tracing.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// multiHandler fans out records to several handlers.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}

		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}

	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}

	return out
}

// levelFilter passes only records whose level satisfies pass.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}

	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

// Writers are the console destinations of a logger.
type Writers struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewLogger builds a logger writing to the console writers and, when file
// is not nil, to file.
func NewLogger(level slog.Level, w Writers, file io.Writer) *slog.Logger {
	var handlers multiHandler

	if file == nil {
		handlers = append(handlers,
			levelFilter{
				pass: func(l slog.Level) bool { return l < slog.LevelError },
				h:    slog.NewTextHandler(w.Stdout, &slog.HandlerOptions{Level: level}),
			},
			levelFilter{
				pass: func(l slog.Level) bool { return l >= slog.LevelError },
				h:    slog.NewTextHandler(w.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
			},
		)
	} else {
		handlers = append(handlers,
			slog.NewTextHandler(w.Stderr, &slog.HandlerOptions{Level: level}),
			slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}),
		)
	}

	return slog.New(handlers)
}

// SetupLogger builds the process logger. The returned closers must be
// closed on exit.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}

	console := Writers{Stdout: os.Stdout, Stderr: os.Stderr}
	if logFile == "" {
		return NewLogger(level, console, nil), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", logFile, err)
	}

	return NewLogger(level, console, f), []io.Closer{f}, nil
}

// CloseAll closes every closer and joins their errors.
func CloseAll(closers []io.Closer) error {
	var errs []error
	for _, c := range closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
