// internal/app/features/adsense/handler.go
package adsense

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

// Handler serves the AdSense tag fragment from stored settings.
type Handler struct {
	Settings SettingsReader
	SiteID   string
	Log      *zap.Logger
}

// NewHandler constructs an AdSense fragment handler.
func NewHandler(settings SettingsReader, siteID string, logger *zap.Logger) *Handler {
	return &Handler{
		Settings: settings,
		SiteID:   siteID,
		Log:      logger,
	}
}

// ServeTag handles GET requests for the AdSense fragment.
//
// The response body is the markup to inject into a story page: the
// <amp-story-auto-ads> element, a console diagnostic, or empty. A settings
// lookup failure is treated the same as a disabled network; nothing is
// escalated to the caller.
func (h *Handler) ServeTag(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	settings, err := h.Settings.Get(ctx, h.SiteID)
	if err != nil {
		h.Log.Debug("adsense: settings lookup failed", zap.Error(err))
		return
	}

	enabled := settings.Network == models.NetworkAdSense
	_, _ = io.WriteString(w, Render(enabled, settings.AdSenseClient, settings.AdSenseSlot))
}
