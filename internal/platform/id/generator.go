package id

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns URL-safe ids with Size bytes of entropy, which makes
// them usable as session keys in cookies.
type RandomGenerator struct {
	Size int
}

const defaultSize = 24

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{Size: defaultSize}
}

func (g *RandomGenerator) NewID() (string, error) {
	size := g.Size
	if size <= 0 {
		size = defaultSize
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
