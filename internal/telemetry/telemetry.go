// Package telemetry wraps OpenTelemetry tracing for the estimation pipeline.
// Without a configured TracerProvider every span is a no-op.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/agbru/picalc"

// Tracer returns the tracer of the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartStage opens a span named "picalc.<stage>".
func StartStage(ctx context.Context, stage string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "picalc."+stage, trace.WithAttributes(attrs...))
}

// EndStage records err on span, if any, and ends it.
func EndStage(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// RunAttributes returns the attributes shared by every stage of a run.
func RunAttributes(runID, method string, units uint64, poolSize int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("picalc.run_id", runID),
		attribute.String("picalc.method", method),
		attribute.Int64("picalc.units", int64(units)),
		attribute.Int("picalc.pool_size", poolSize),
	}
}
