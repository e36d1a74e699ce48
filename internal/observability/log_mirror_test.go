package observability

import (
	"errors"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
)

func TestIsProbeAccessLog(t *testing.T) {
	if !isProbeAccessLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check access log to be skipped")
	}
	if isProbeAccessLog("http request", []any{"path", "/v1/context"}) {
		t.Fatalf("did not expect context access log to be skipped")
	}
	if isProbeAccessLog("load session failed", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non access log to be skipped")
	}
}

func TestOTelAttributes(t *testing.T) {
	attrs := otelAttributes([]any{"owner", "alice", "status", 404, "error", errors.New("boom"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "owner" || attrs[0].Value.AsString() != "alice" {
		t.Fatalf("unexpected owner attribute")
	}
	if attrs[1].Key != "status" || attrs[1].Value.AsInt64() != 404 {
		t.Fatalf("unexpected status attribute")
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("unexpected error attribute: %s", attrs[2].Value.AsString())
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestOTelValue_Slice(t *testing.T) {
	v := otelValue([]string{"username", "email"})
	if v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("expected slice value, got %s", v.Kind())
	}
}
