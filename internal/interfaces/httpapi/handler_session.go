package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fifa-tracker/internal/domain/session"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

// DeleteSessionKey drops one cached value so the next context request
// recomputes it.
func (h *Handler) DeleteSessionKey(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSessionKey")
	defer span.End()

	key, err := session.ParseKey(r.PathValue("key"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	h.sessionContext.DelSessionKey(sessionFromContext(ctx), key)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": string(key)})
}
