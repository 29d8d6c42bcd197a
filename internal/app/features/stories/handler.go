// internal/app/features/stories/handler.go
package stories

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/storyads/internal/app/features/admanager"
	"github.com/dalemusser/storyads/internal/app/features/adsense"
	"github.com/dalemusser/storyads/internal/app/system/timeouts"
	"github.com/dalemusser/storyads/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SettingsReader defines the settings lookup the handler needs.
type SettingsReader interface {
	Get(ctx context.Context, siteID string) (models.AdSettings, error)
}

// Handler serves the demo AMP story pages with the configured ad tag
// injected into the story document.
type Handler struct {
	Settings  SettingsReader
	SiteID    string
	Publisher string
	Log       *zap.Logger
}

// NewHandler constructs a stories handler.
func NewHandler(settings SettingsReader, siteID, publisher string, logger *zap.Logger) *Handler {
	return &Handler{
		Settings:  settings,
		SiteID:    siteID,
		Publisher: publisher,
		Log:       logger,
	}
}

type indexVM struct {
	Stories []Story
}

// ServeIndex lists the available stories.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "stories_index", indexVM{Stories: All()})
}

type storyVM struct {
	Story        Story
	Publisher    string
	AdTag        template.HTML
	FallbackHTML template.HTML
}

// ServeStory renders a single AMP story.
//
// Ad insertion is best-effort: a settings lookup failure or an incomplete
// configuration renders the story without a tag. FallbackHTML was sanitized
// when it was saved, so it is trusted here.
func (h *Handler) ServeStory(w http.ResponseWriter, r *http.Request) {
	story, ok := BySlug(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	vm := storyVM{Story: story, Publisher: h.Publisher}

	settings, err := h.Settings.Get(ctx, h.SiteID)
	if err != nil {
		h.Log.Debug("stories: settings lookup failed, rendering without ads", zap.Error(err))
		templates.Render(w, r, "story", vm)
		return
	}

	switch settings.Network {
	case models.NetworkAdSense:
		vm.AdTag = template.HTML(adsense.Render(true, settings.AdSenseClient, settings.AdSenseSlot))
	case models.NetworkAdManager:
		vm.AdTag = template.HTML(admanager.Tag(settings.AdManagerSlot))
	}
	if vm.AdTag == "" && settings.FallbackHTML != "" {
		vm.FallbackHTML = template.HTML(settings.FallbackHTML)
	}

	templates.Render(w, r, "story", vm)
}
