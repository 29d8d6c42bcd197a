// internal/app/features/adminauth/routes.go
package adminauth

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves admin login/logout.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.HandleLogin) // mounted under /admin
	r.Post("/logout", h.HandleLogout)
	return r
}
