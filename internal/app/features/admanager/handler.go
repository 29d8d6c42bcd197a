// internal/app/features/admanager/handler.go
package admanager

import (
	"context"
	"io"
	"net/http"

	"github.com/dalemusser/storyads/internal/app/system/timeouts"
	"github.com/dalemusser/storyads/internal/domain/models"
	"go.uber.org/zap"
)

// SettingsReader defines the settings lookup the handler needs.
type SettingsReader interface {
	Get(ctx context.Context, siteID string) (models.AdSettings, error)
}

// Handler serves the Ad Manager tag fragment from stored settings.
type Handler struct {
	Settings SettingsReader
	SiteID   string
	Log      *zap.Logger
}

// NewHandler constructs an Ad Manager fragment handler.
func NewHandler(settings SettingsReader, siteID string, logger *zap.Logger) *Handler {
	return &Handler{
		Settings: settings,
		SiteID:   siteID,
		Log:      logger,
	}
}

// ServeTag handles GET requests for the Ad Manager fragment.
//
// Emits the tag only when the Ad Manager network is selected and a slot is
// configured; every other state, including a settings lookup failure,
// produces an empty body.
func (h *Handler) ServeTag(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	settings, err := h.Settings.Get(ctx, h.SiteID)
	if err != nil {
		h.Log.Debug("admanager: settings lookup failed", zap.Error(err))
		return
	}
	if settings.Network != models.NetworkAdManager || !settings.AdManagerConfigured() {
		return
	}

	_, _ = io.WriteString(w, Tag(settings.AdManagerSlot))
}
