package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fifa-tracker/internal/platform/logging"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

type Handler struct {
	sessionContext *usecase.SessionContextService
	profileService *usecase.ProfileService
	userAdmin      *usecase.UserAdminService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	sessionContext *usecase.SessionContextService,
	profileService *usecase.ProfileService,
	userAdmin *usecase.UserAdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sessionContext: sessionContext,
		profileService: profileService,
		userAdmin:      userAdmin,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetContext resolves everything a page needs to personalize itself, in the
// order the page template consumes it.
func (h *Handler) GetContext(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetContext")
	defer span.End()

	req := resolverRequest(r)
	h.sessionContext.SetCurrency(ctx, req)

	current, err := h.sessionContext.GetCurrentUser(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve current user failed", "owner", req.Owner, "error", err)
		writeError(ctx, w, err)
		return
	}

	edition := h.sessionContext.GetFIFAEdition(ctx, req, &current)

	careerTeams, err := h.sessionContext.GetCareerUser(ctx, req, &current)
	if err != nil {
		h.logger.ErrorContext(ctx, "get career user failed", "current_user", current.Identifier(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionContextToDTO(req.Session, current, edition, careerTeams))
}

// resolverRequest reads ?owner= keeping presence apart from value.
func resolverRequest(r *http.Request) usecase.Request {
	ctx := r.Context()
	req := usecase.Request{
		Session: sessionFromContext(ctx),
		Viewer:  viewerFromContext(ctx),
	}
	if values, ok := r.URL.Query()["owner"]; ok {
		req.HasOwner = true
		if len(values) > 0 {
			req.Owner = values[0]
		}
	}
	return req
}

func (h *Handler) decodeJSON(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
