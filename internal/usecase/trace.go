package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("fifa-tracker/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens a child span; requests without an active
// parent get the noop span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// failSpan marks span as failed and hands err back to the caller.
func failSpan(span trace.Span, err error) error {
	if err == nil || !span.IsRecording() {
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func currentUserAttrs(current *CurrentUser) []attribute.KeyValue {
	if current == nil {
		return []attribute.KeyValue{attribute.String("current_user.kind", CurrentUserGuest.String())}
	}
	return []attribute.KeyValue{
		attribute.String("current_user.kind", current.Kind.String()),
		attribute.String("current_user.identifier", current.Identifier()),
	}
}
