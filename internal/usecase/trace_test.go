package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestStartUsecaseSpan_WithoutParentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gotCtx, span := startUsecaseSpan(ctx, "usecase.Test", currentUserAttrs(nil)...)
	if gotCtx != ctx {
		t.Fatalf("expected context unchanged without parent span")
	}
	if span.IsRecording() {
		t.Fatalf("expected noop span")
	}
}

func TestFailSpan_ReturnsError(t *testing.T) {
	t.Parallel()

	_, span := startUsecaseSpan(context.Background(), "usecase.Test")
	want := errors.New("boom")
	if got := failSpan(span, want); got != want {
		t.Fatalf("expected same error back, got %v", got)
	}
	if got := failSpan(span, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestCurrentUserAttrs(t *testing.T) {
	t.Parallel()

	owner := PublicOwner("alice")
	attrs := currentUserAttrs(&owner)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[1].Value.AsString() != "alice" {
		t.Fatalf("unexpected identifier attribute: %v", attrs[1].Value.AsString())
	}
}
