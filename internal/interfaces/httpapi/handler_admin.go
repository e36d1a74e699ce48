package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fifa-tracker/internal/usecase"
)

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListUsers")
	defer span.End()

	rows, err := h.userAdmin.ListUsers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "admin list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userListRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, userListRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, userListDTO{
		Columns: usecase.UserListColumns,
		Rows:    items,
	})
}

func (h *Handler) AdminAddUserForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminAddUserForm")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, userFormToDTO(h.userAdmin.AddForm()))
}

func (h *Handler) AdminChangeUserForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminChangeUserForm")
	defer span.End()

	username := r.PathValue("username")
	form, err := h.userAdmin.ChangeForm(ctx, username)
	if err != nil {
		h.logger.WarnContext(ctx, "admin change form failed", "username", username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userFormToDTO(form))
}

func (h *Handler) AdminUpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateUserProfile")
	defer span.End()

	req, err := h.decodeProfileRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	username := r.PathValue("username")
	updated, err := h.userAdmin.UpdateProfile(ctx, username, req.toChanges())
	if err != nil {
		h.logger.WarnContext(ctx, "admin update profile failed", "username", username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(updated))
}
