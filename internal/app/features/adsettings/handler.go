// internal/app/features/adsettings/handler.go
package adsettings

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/storyads/internal/app/system/auth"
	"github.com/dalemusser/storyads/internal/app/system/htmlsanitize"
	"github.com/dalemusser/storyads/internal/app/system/timeouts"
	"github.com/dalemusser/storyads/internal/domain/models"
	"go.uber.org/zap"
)

// SettingsStore defines the persistence operations the admin API needs.
type SettingsStore interface {
	Get(ctx context.Context, siteID string) (models.AdSettings, error)
	Save(ctx context.Context, siteID string, settings models.AdSettings) error
}

// Handler serves the admin ad-settings API.
type Handler struct {
	Store  SettingsStore
	SiteID string
	Log    *zap.Logger
}

// NewHandler constructs an ad-settings admin handler.
func NewHandler(store SettingsStore, siteID string, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		SiteID: siteID,
		Log:    logger,
	}
}

// ServeSettings handles GET /admin/ad-settings and returns the current
// settings document (defaults when none have been saved).
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	settings, err := h.Store.Get(ctx, h.SiteID)
	if err != nil {
		h.Log.Error("adsettings: load failed", zap.Error(err))
		http.Error(w, `{"error":"failed to load settings"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(settings)
}

// updateRequest is the PUT body for settings updates.
type updateRequest struct {
	Network       string `json:"network"`
	AdSenseClient string `json:"adsense_client"`
	AdSenseSlot   string `json:"adsense_slot"`
	AdManagerSlot string `json:"admanager_slot"`
	FallbackHTML  string `json:"fallback_html"`
}

// HandleUpdate handles PUT /admin/ad-settings.
//
// The network value must be one of "none", "adsense", or "admanager".
// Fallback HTML is sanitized before it is stored; scripts and event
// handlers never reach the database.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	network := strings.TrimSpace(req.Network)
	if !models.ValidNetwork(network) {
		http.Error(w, `{"error":"network must be one of none, adsense, admanager"}`, http.StatusBadRequest)
		return
	}

	settings := models.AdSettings{
		SiteID:        h.SiteID,
		Network:       network,
		AdSenseClient: strings.TrimSpace(req.AdSenseClient),
		AdSenseSlot:   strings.TrimSpace(req.AdSenseSlot),
		AdManagerSlot: strings.TrimSpace(req.AdManagerSlot),
		FallbackHTML:  htmlsanitize.Sanitize(strings.TrimSpace(req.FallbackHTML)),
	}
	if admin, ok := auth.CurrentAdmin(r); ok {
		settings.UpdatedBy = admin.Email
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Save(ctx, h.SiteID, settings); err != nil {
		h.Log.Error("adsettings: save failed", zap.Error(err))
		http.Error(w, `{"error":"failed to save settings"}`, http.StatusInternalServerError)
		return
	}

	saved, err := h.Store.Get(ctx, h.SiteID)
	if err != nil {
		h.Log.Error("adsettings: reload after save failed", zap.Error(err))
		http.Error(w, `{"error":"failed to load settings"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(saved)
}
