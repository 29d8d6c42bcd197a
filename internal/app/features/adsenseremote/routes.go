// internal/app/features/adsenseremote/routes.go
package adsenseremote

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the remote-fetch AdSense fragment.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTag) // mounted under /ads/adsense-auto
	return r
}
