// internal/app/features/stories/routes.go
package stories

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the story pages.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeIndex) // mounted under /stories
	r.Get("/{slug}", h.ServeStory)
	return r
}
