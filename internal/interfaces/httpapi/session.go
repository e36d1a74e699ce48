package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/platform/id"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

type SessionConfig struct {
	CookieName   string
	TTL          time.Duration
	CookieSecure bool
}

// Sessions attaches a session to every request. State is persisted only
// when a handler changed it, right before the response header is written.
func Sessions(store session.Store, ids id.Generator, cfg SessionConfig, logger *logging.Logger, next http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = "sessionid"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := loadSession(ctx, store, ids, cfg.CookieName, r)
		if err != nil {
			logger.ErrorContext(ctx, "load session failed", "error", err)
			writeError(ctx, w, err)
			return
		}

		sw := &sessionWriter{ResponseWriter: w}
		sw.commit = func() {
			persistSession(ctx, store, sess, cfg, logger, w)
		}

		next.ServeHTTP(sw, r.WithContext(withSession(ctx, sess)))
		sw.flush()
	})
}

func loadSession(ctx context.Context, store session.Store, ids id.Generator, cookieName string, r *http.Request) (*session.Session, error) {
	ctx, span := startSpan(ctx, "httpapi.Sessions.load")
	defer span.End()

	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		state, ok, err := store.Load(ctx, cookie.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		if ok {
			return session.Restore(cookie.Value, state), nil
		}
	}

	sid, err := ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	return session.New(sid), nil
}

func persistSession(ctx context.Context, store session.Store, sess *session.Session, cfg SessionConfig, logger *logging.Logger, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.Sessions.save")
	defer span.End()

	if !sess.Modified() {
		return
	}
	if err := store.Save(ctx, sess.ID, sess.State(), cfg.TTL); err != nil {
		logger.ErrorContext(ctx, "save session failed", "error", err)
		return
	}

	cookie := &http.Cookie{
		Name:     cfg.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.TTL > 0 {
		cookie.MaxAge = int(cfg.TTL.Seconds())
	}
	http.SetCookie(w, cookie)
}

// sessionWriter runs commit once, before the first header write.
type sessionWriter struct {
	http.ResponseWriter
	commit    func()
	committed bool
}

func (w *sessionWriter) flush() {
	if w.committed {
		return
	}
	w.committed = true
	w.commit()
}

func (w *sessionWriter) WriteHeader(status int) {
	w.flush()
	w.ResponseWriter.WriteHeader(status)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}
