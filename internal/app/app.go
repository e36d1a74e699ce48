package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fifa-tracker/internal/config"
	"github.com/riskibarqy/fifa-tracker/internal/domain/career"
	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/domain/team"
	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"github.com/riskibarqy/fifa-tracker/internal/infrastructure/account/anubis"
	cacherepo "github.com/riskibarqy/fifa-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fifa-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fifa-tracker/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fifa-tracker/internal/infrastructure/sessionstore"
	"github.com/riskibarqy/fifa-tracker/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fifa-tracker/internal/platform/cache"
	idgen "github.com/riskibarqy/fifa-tracker/internal/platform/id"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
	"github.com/riskibarqy/fifa-tracker/internal/platform/resilience"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

const sessionPurgeInterval = time.Minute

type repositories struct {
	users   user.Repository
	careers career.Repository
	teams   team.Repository
}

// App owns the HTTP server and the connections it was built on.
type App struct {
	Server *http.Server

	logger  *logging.Logger
	closers []func(context.Context) error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	repos, err := a.buildRepositories(cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	sessions, err := a.buildSessionStore(ctx, cfg)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		anubis.Config{
			BaseURL:        cfg.AnubisBaseURL,
			IntrospectPath: cfg.AnubisIntrospectURL,
			AdminKey:       cfg.AnubisAdminKey,
			PrincipalTTL:   cfg.AnubisPrincipalTTL,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AnubisCircuitEnabled,
				FailureThreshold: cfg.AnubisCircuitFailureCount,
				OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
			},
		},
		logger.Named("anubis"),
	)

	sessionContextSvc := usecase.NewSessionContextService(repos.users, repos.careers, repos.teams, logger)
	profileSvc := usecase.NewProfileService(repos.users, logger)
	userAdminSvc := usecase.NewUserAdminService(repos.users)

	handler := httpapi.NewHandler(sessionContextSvc, profileSvc, userAdminSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Verifier:     anubisClient,
		Viewers:      repos.users,
		Activity:     profileSvc,
		SessionStore: sessions,
		SessionIDs:   idgen.NewRandomGenerator(),
		Session: httpapi.SessionConfig{
			CookieName:   cfg.SessionCookieName,
			TTL:          cfg.SessionTTL,
			CookieSecure: cfg.SessionCookieSecure,
		},
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:             logger,
	})

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildRepositories(cfg config.Config) (repositories, error) {
	var repos repositories

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		a.onClose(func(context.Context) error { return db.Close() })
		repos = postgresRepositories(db)
		a.logger.Info("storage backend ready", "backend", config.StoragePostgres, "db", postgres.DBName(cfg.DBURL))
	default:
		repos = repositories{
			users:   memory.NewUserRepository(memory.SeedUsers()),
			careers: memory.NewCareerRepository(memory.SeedCareerUsers()),
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
		}
		a.logger.Info("storage backend ready", "backend", config.StorageMemory)
	}

	if !cfg.CacheEnabled {
		return repos, nil
	}

	store := basecache.NewStore(cfg.CacheTTL)
	return repositories{
		users:   cacherepo.NewUserRepository(repos.users, store),
		careers: cacherepo.NewCareerRepository(repos.careers, store),
		teams:   cacherepo.NewTeamRepository(repos.teams, store),
	}, nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		users:   postgres.NewUserRepository(db),
		careers: postgres.NewCareerRepository(db),
		teams:   postgres.NewTeamRepository(db),
	}
}

func (a *App) buildSessionStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	if cfg.SessionBackend == config.SessionRedis {
		client, err := sessionstore.NewRedisClient(ctx, cfg.RedisURL, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.onClose(func(context.Context) error { return client.Close() })
		a.logger.Info("session backend ready", "backend", config.SessionRedis, "db", cfg.RedisDB)

		breaker := resilience.DefaultCircuitBreakerConfig()
		breaker.Enabled = cfg.RedisCircuitEnabled
		return sessionstore.NewRedisStore(redis.UniversalClient(client), breaker), nil
	}

	store := sessionstore.NewMemoryStore()
	purgeCtx, cancel := context.WithCancel(context.Background())
	go a.purgeSessions(purgeCtx, store)
	a.onClose(func(context.Context) error {
		cancel()
		return nil
	})
	a.logger.Info("session backend ready", "backend", config.SessionMemory)

	return store, nil
}

func (a *App) purgeSessions(ctx context.Context, store *sessionstore.MemoryStore) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.PurgeExpired(); n > 0 {
				a.logger.Debug("expired sessions purged", "count", n)
			}
		}
	}
}

func (a *App) onClose(fn func(context.Context) error) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
