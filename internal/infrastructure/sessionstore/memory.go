package sessionstore

import (
	"context"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	basecache "github.com/riskibarqy/fifa-tracker/internal/platform/cache"
)

// MemoryStore keeps encoded session state in process. Sessions are lost on
// restart and not shared between replicas.
type MemoryStore struct {
	entries *basecache.Store
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: basecache.NewStore(0)}
}

func (s *MemoryStore) Load(ctx context.Context, id string) (session.State, bool, error) {
	v, ok := s.entries.Get(ctx, storageKey(id))
	if !ok {
		return session.State{}, false, nil
	}
	raw, _ := v.([]byte)

	state, err := decodeState(raw)
	if err != nil {
		return session.State{}, false, err
	}
	return state, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, id string, state session.State, ttl time.Duration) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	s.entries.SetWithTTL(ctx, storageKey(id), raw, ttl)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.entries.Delete(ctx, storageKey(id))
	return nil
}

// PurgeExpired drops expired sessions; it returns the number removed.
func (s *MemoryStore) PurgeExpired() int {
	return s.entries.PurgeExpired()
}
