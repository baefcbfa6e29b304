// Copyright (c) 2025 Justin Cranford

// Package logging wires structured logging for the crypto core through the
// OpenTelemetry log bridge, scaled down to what a library-like core needs:
// no remote collector, just a stdout-backed slog.Logger any caller can
// swap out.
package logging

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// Name is the instrumentation scope reported on every log record.
const Name = "opcuacrypto"

// New builds a slog.Logger backed by an OTel LoggerProvider that exports to
// w. Closing the returned shutdown func flushes and releases the provider.
func New(w io.Writer) (*slog.Logger, func(context.Context) error) {
	exporter := newWriterExporter(w)
	processor := sdklog.NewSimpleProcessor(exporter)
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(processor))

	logger := otelslog.NewLogger(Name, otelslog.WithLoggerProvider(provider))

	return logger, provider.Shutdown
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writerExporter adapts an io.Writer into an sdklog.Exporter by rendering
// each record through slog's text handler — simpler than wiring the stdout
// log exporter's JSON schema for a core with no remote backend to match.
type writerExporter struct {
	handler slog.Handler
}

func newWriterExporter(w io.Writer) *writerExporter {
	return &writerExporter{handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})}
}

func (e *writerExporter) Export(ctx context.Context, records []otellog.Record) error {
	for _, record := range records {
		entry := slog.NewRecord(record.Timestamp(), severityToSlogLevel(record.Severity()), record.Body().AsString(), 0)

		record.WalkAttributes(func(kv otellog.KeyValue) bool {
			entry.AddAttrs(slog.Any(kv.Key, kv.Value.AsInterface()))

			return true
		})

		if err := e.handler.Handle(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}

func severityToSlogLevel(sev otellog.Severity) slog.Level {
	switch {
	case sev >= otellog.SeverityError:
		return slog.LevelError
	case sev >= otellog.SeverityWarn:
		return slog.LevelWarn
	case sev >= otellog.SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func (e *writerExporter) Shutdown(context.Context) error   { return nil }
func (e *writerExporter) ForceFlush(context.Context) error { return nil }
