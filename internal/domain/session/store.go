package session

import (
	"context"
	"time"
)

// Store persists session state keyed by an opaque session id.
type Store interface {
	Load(ctx context.Context, id string) (State, bool, error)
	Save(ctx context.Context, id string, state State, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
