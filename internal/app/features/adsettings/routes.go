// internal/app/features/adsettings/routes.go
package adsettings

import (
	"github.com/dalemusser/storyads/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a subrouter that serves the admin ad-settings API.
// All routes require an authenticated admin session.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAdmin)
	r.Get("/", h.ServeSettings) // mounted under /admin/ad-settings
	r.Put("/", h.HandleUpdate)
	return r
}
