package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fifa-tracker/internal/domain/user"
	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

type updateProfileRequest struct {
	Currency    *int  `json:"currency" validate:"omitempty,min=0,max=2"`
	FIFAEdition *int  `json:"fifa_edition" validate:"omitempty,min=1,max=99"`
	IsPublic    *bool `json:"is_public"`
}

func (req updateProfileRequest) toChanges() usecase.ProfileChanges {
	changes := usecase.ProfileChanges{
		FIFAEdition: req.FIFAEdition,
		IsPublic:    req.IsPublic,
	}
	if req.Currency != nil {
		currency := user.Currency(*req.Currency)
		changes.Currency = &currency
	}
	return changes
}

func (h *Handler) decodeProfileRequest(r *http.Request) (updateProfileRequest, error) {
	var req updateProfileRequest
	if err := h.decodeJSON(r, &req); err != nil {
		return updateProfileRequest{}, err
	}
	if err := h.validateRequest(r.Context(), req); err != nil {
		return updateProfileRequest{}, err
	}
	return req, nil
}

func (h *Handler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMyProfile")
	defer span.End()

	req, err := h.decodeProfileRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.profileService.UpdateOwn(ctx, viewerFromContext(ctx), sessionFromContext(ctx), req.toChanges())
	if err != nil {
		h.logger.WarnContext(ctx, "update own profile failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(updated))
}
