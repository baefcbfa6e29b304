// Copyright (c) 2025 Justin Cranford

// Package telemetry provides StartOperation, which opens an OpenTelemetry
// span for a CryptoProvider call so a caller driving a secure channel can
// see provider calls inline with its own trace, consistent with how the
// rest of the server fleet traces every request. The provider itself does
// not start spans; a caller wraps its calls with StartOperation.
package telemetry

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Name is the tracer's instrumentation scope.
const Name = "opcuacrypto/crypto"

// CorrelationIDKey is the span attribute carrying a per-invocation
// correlation id, generated fresh by each StartOperation call.
const CorrelationIDKey = attribute.Key("correlation_id")

// New builds a TracerProvider that exports spans to w, and returns the
// tracer plus a shutdown func.
func New(w io.Writer) (oteltrace.Tracer, func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, err
	}

	provider := trace.NewTracerProvider(trace.WithSyncer(exporter))

	return provider.Tracer(Name), provider.Shutdown, nil
}

// Noop returns the global tracer, which records nothing unless a global
// TracerProvider has been installed.
func Noop() oteltrace.Tracer {
	return otel.Tracer(Name)
}

// StartOperation begins a span for a single CryptoProvider call, tagging it
// with the policy URI and a fresh correlation id.
func StartOperation(ctx context.Context, tracer oteltrace.Tracer, operation, policyURI string) (context.Context, oteltrace.Span) {
	return tracer.Start(ctx, operation,
		oteltrace.WithAttributes(
			attribute.String("policy_uri", policyURI),
			CorrelationIDKey.String(uuid.NewString()),
		),
	)
}
