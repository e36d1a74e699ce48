package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator()

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if len(first) != 32 {
		t.Fatalf("expected 32 characters for 24 bytes, got %d", len(first))
	}
	if strings.ContainsAny(first, "+/=") {
		t.Fatalf("id must be cookie safe: %q", first)
	}
}
