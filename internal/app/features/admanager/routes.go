// internal/app/features/admanager/routes.go
package admanager

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the Ad Manager tag fragment.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTag) // mounted under /ads/admanager
	return r
}
