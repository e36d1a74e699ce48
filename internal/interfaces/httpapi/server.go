package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/platform/id"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
)

type RouterConfig struct {
	Verifier           TokenVerifier
	Viewers            ViewerResolver
	Activity           ActivityRecorder
	SessionStore       session.Store
	SessionIDs         id.Generator
	Session            SessionConfig
	CORSAllowedOrigins []string
	Logger             *logging.Logger
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	ids := cfg.SessionIDs
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerSessionContextRoutes(mux, handler)
	registerAdminRoutes(mux, handler)

	var app http.Handler = mux
	app = OptionalAuth(cfg.Verifier, cfg.Viewers, cfg.Activity, app)
	app = Sessions(cfg.SessionStore, ids, cfg.Session, logger, app)
	app = Localize(app)
	app = recoverPanic(logger, app)
	app = CORS(cfg.CORSAllowedOrigins, app)

	return RequestTracing(RequestLogging(logger, app))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
