// Package logger provides structured logging for ctxdict components.
//
// Library packages never log through the global slog default; they take a
// *Logger through their options and fall back to NoopLogger.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with dictionary-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// With returns a Logger that includes the given attributes in each record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithDictionary adds a dictionary id field to the logger.
func (l *Logger) WithDictionary(id string) *Logger {
	return l.With("dictionary", id)
}

// BuildSummary is the subset of build statistics that is logged.
type BuildSummary struct {
	Phrases             int
	Nodes               int
	SourceSentences     int
	TargetSentences     int
	ReferencedSentences uint64
	Bytes               int64
	Checksum            uint64
	Duration            time.Duration
}

// LogBuild logs the outcome of a dictionary build.
func (l *Logger) LogBuild(ctx context.Context, s BuildSummary, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"phrases", s.Phrases,
			"error", err,
		)

		return
	}

	l.InfoContext(ctx, "build completed",
		"phrases", s.Phrases,
		"nodes", s.Nodes,
		"source_sentences", s.SourceSentences,
		"target_sentences", s.TargetSentences,
		"referenced_sentences", s.ReferencedSentences,
		"bytes", s.Bytes,
		"checksum", s.Checksum,
		"duration", s.Duration,
	)
}

// LogBuildProgress logs periodic build progress.
func (l *Logger) LogBuildProgress(ctx context.Context, phrases int, bytes int64) {
	l.DebugContext(ctx, "build progress",
		"phrases", phrases,
		"bytes", bytes,
	)
}

// LogOpen logs opening a dictionary.
func (l *Logger) LogOpen(ctx context.Context, name string, size int, mapped bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "open failed",
			"name", name,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "dictionary opened",
		"name", name,
		"size", size,
		"mapped", mapped,
	)
}

// LogSearch logs an exact phrase lookup.
func (l *Logger) LogSearch(ctx context.Context, query string, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"query", query,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "search completed",
		"query", query,
		"results", results,
	)
}

// LogAutocomplete logs a prefix lookup.
func (l *Logger) LogAutocomplete(ctx context.Context, query string, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "autocomplete failed",
			"query", query,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "autocomplete completed",
		"query", query,
		"results", results,
	)
}

// LogLoad logs the outcome of loading a set of dictionaries.
func (l *Logger) LogLoad(ctx context.Context, dictionaries int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"loaded", dictionaries,
			"error", err,
		)

		return
	}

	l.InfoContext(ctx, "dictionaries loaded",
		"count", dictionaries,
		"elapsed", elapsed,
	)
}

// LogExampleSkipped logs an example whose context could not be resolved and
// was left out of a result.
func (l *Logger) LogExampleSkipped(ctx context.Context, example string, err error) {
	l.WarnContext(ctx, "example skipped",
		"example", example,
		"error", err,
	)
}
