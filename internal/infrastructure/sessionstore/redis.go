package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/platform/resilience"
)

// RedisStore shares sessions between replicas. Calls go through a circuit
// breaker so a Redis outage fails requests fast.
type RedisStore struct {
	client  redis.UniversalClient
	breaker *resilience.CircuitBreaker
}

// NewRedisClient parses a redis:// or rediss:// URL; db overrides the URL path
// when it is >= 0.
func NewRedisClient(ctx context.Context, rawURL string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if db >= 0 {
		opts.DB = db
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func NewRedisStore(client redis.UniversalClient, breakerCfg resilience.CircuitBreakerConfig) *RedisStore {
	return &RedisStore{
		client:  client,
		breaker: resilience.NewCircuitBreakerFromConfig(breakerCfg),
	}
}

func (s *RedisStore) Load(ctx context.Context, id string) (session.State, bool, error) {
	var raw []byte
	err := s.breaker.Execute(func() error {
		var getErr error
		raw, getErr = s.client.Get(ctx, storageKey(id)).Bytes()
		return getErr
	}, isRedisFailure)
	if errors.Is(err, redis.Nil) {
		return session.State{}, false, nil
	}
	if err != nil {
		return session.State{}, false, fmt.Errorf("load session: %w", err)
	}

	state, err := decodeState(raw)
	if err != nil {
		return session.State{}, false, err
	}
	return state, true, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, state session.State, ttl time.Duration) error {
	raw, err := encodeState(state)
	if err != nil {
		return err
	}

	err = s.breaker.Execute(func() error {
		return s.client.Set(ctx, storageKey(id), raw, ttl).Err()
	}, isRedisFailure)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	err := s.breaker.Execute(func() error {
		return s.client.Del(ctx, storageKey(id)).Err()
	}, isRedisFailure)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func isRedisFailure(err error) bool {
	return !errors.Is(err, redis.Nil)
}
