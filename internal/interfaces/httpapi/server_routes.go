package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSessionContextRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/context", handler.GetContext)
	mux.HandleFunc("PUT /v1/me/profile", handler.UpdateMyProfile)
	mux.HandleFunc("DELETE /v1/session/{key}", handler.DeleteSessionKey)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /admin/users", RequireStaff(http.HandlerFunc(handler.AdminListUsers)))
	mux.Handle("GET /admin/users/add", RequireStaff(http.HandlerFunc(handler.AdminAddUserForm)))
	mux.Handle("GET /admin/users/{username}/change", RequireStaff(http.HandlerFunc(handler.AdminChangeUserForm)))
	mux.Handle("PUT /admin/users/{username}/profile", RequireStaff(http.HandlerFunc(handler.AdminUpdateUserProfile)))
}
