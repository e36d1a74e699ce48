package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fifa-tracker/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// spannedPrefixes lists the helpers that get their own span; everything else
// runs inside the request span.
var spannedPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.Sessions.",
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range spannedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
