// internal/app/features/adsenseremote/handler.go
package adsenseremote

import (
	"context"
	"io"
	"net/http"

	"github.com/dalemusser/storyads/internal/app/system/propertycode"
	"github.com/dalemusser/storyads/internal/app/system/timeouts"
	"github.com/dalemusser/storyads/internal/domain/models"
	"go.uber.org/zap"
)

// SettingsReader defines the settings lookup the handler needs.
type SettingsReader interface {
	Get(ctx context.Context, siteID string) (models.AdSettings, error)
}

// Handler serves the AdSense tag fragment with identifiers fetched from
// the remote ad-config API per request.
type Handler struct {
	Settings    SettingsReader
	Client      *Client
	SiteID      string
	DefaultCode string // fallback property code when host/query yield none
	Log         *zap.Logger
}

// NewHandler constructs a remote-fetch AdSense fragment handler.
func NewHandler(settings SettingsReader, client *Client, siteID, defaultCode string, logger *zap.Logger) *Handler {
	return &Handler{
		Settings:    settings,
		Client:      client,
		SiteID:      siteID,
		DefaultCode: defaultCode,
		Log:         logger,
	}
}

// ServeTag handles GET requests for the remote-fetch AdSense fragment.
//
// The tag is emitted only when AdSense is enabled, the stored publisher and
// slot settings are both non-empty, and the remote fetch yields a usable
// client/slot pair. Every failure mode produces an empty body; nothing is
// escalated to the caller.
func (h *Handler) ServeTag(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	settings, err := h.Settings.Get(ctx, h.SiteID)
	cancel()
	if err != nil {
		h.Log.Debug("adsenseremote: settings lookup failed", zap.Error(err))
		return
	}
	if settings.Network != models.NetworkAdSense || !settings.AdSenseConfigured() {
		return
	}

	code := propertycode.FromRequest(r, h.DefaultCode)

	fetchCtx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "ad-config fetch")
	defer cancel()

	cfg := h.Client.FetchAdConfig(fetchCtx, code)
	if cfg == nil {
		return
	}

	_, _ = io.WriteString(w, Tag(cfg.Client, cfg.Slot, code))
}
