package sessionstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"github.com/riskibarqy/fifa-tracker/internal/platform/resilience"
)

func TestCodec_UsesSessionKeyNames(t *testing.T) {
	t.Parallel()

	sess := session.New("sid")
	sess.SetCurrency(user.CurrencyPound)
	sess.DeriveCurrencySymbol()
	sess.SetCareerUser(session.CareerTeams{ClubTeamID: 10, ClubTeamName: "Manchester City", NationalTeamID: -1})

	raw, err := encodeState(sess.State())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, want := range []string{`"currency":2`, `"currency_symbol":"£"`, `"career_user":{`, `"nationalteamid":-1`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %s in %s", want, raw)
		}
	}

	decoded, err := decodeState(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	restored := session.Restore("sid", decoded)
	if teams, ok := restored.CareerUser(); !ok || teams.ClubTeamName != "Manchester City" {
		t.Fatalf("unexpected career user: %+v ok=%v", teams, ok)
	}
}

func TestCodec_RejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := decodeState([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestStorageKey(t *testing.T) {
	t.Parallel()

	if got := storageKey("abc"); got != "session:abc" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()

	if _, ok, err := store.Load(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	currency := user.CurrencyDollar
	if err := store.Save(ctx, "sid", session.State{Currency: &currency}, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	state, ok, err := store.Load(ctx, "sid")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if state.Currency == nil || *state.Currency != user.CurrencyDollar {
		t.Fatalf("unexpected state: %+v", state)
	}

	if err := store.Delete(ctx, "sid"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "sid"); ok {
		t.Fatalf("expected session to be deleted")
	}
}

func TestIsRedisFailure(t *testing.T) {
	t.Parallel()

	if isRedisFailure(redis.Nil) {
		t.Fatalf("a missing key must not count against the breaker")
	}
	if !isRedisFailure(errors.New("dial tcp: connection refused")) {
		t.Fatalf("connection errors must count against the breaker")
	}
}

func TestRedisStore_BreakerOpensWhenRedisIsDown(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	store := NewRedisStore(client, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	ctx := context.Background()
	if _, _, err := store.Load(ctx, "sid"); err == nil {
		t.Fatalf("expected load error while redis is down")
	}
	if err := store.Save(ctx, "sid", session.State{}, time.Minute); !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected open breaker, got %v", err)
	}
}
