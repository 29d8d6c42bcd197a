// internal/app/features/adsense/routes.go
package adsense

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the AdSense tag fragment.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTag) // mounted under /ads/adsense
	return r
}
