// internal/domain/models/adsettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ad network identifiers. Network selects which tag shape is emitted for a
// site's stories; NetworkNone disables ad insertion entirely.
const (
	NetworkNone      = "none"
	NetworkAdSense   = "adsense"
	NetworkAdManager = "admanager"
)

// DefaultNetwork is used when no ad settings have been saved for a site.
const DefaultNetwork = NetworkNone

// ValidNetwork reports whether s is a recognized ad network value.
func ValidNetwork(s string) bool {
	switch s {
	case NetworkNone, NetworkAdSense, NetworkAdManager:
		return true
	}
	return false
}

// AdSettings holds per-site ad configuration edited by admins.
// Each site has its own settings document (one document per site_id).
type AdSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Site scoping - each site has its own settings
	SiteID string `bson:"site_id" json:"site_id"`

	// Network selection: "none", "adsense", or "admanager"
	Network string `bson:"network" json:"network"`

	// AdSense configuration
	AdSenseClient string `bson:"adsense_client,omitempty" json:"adsense_client,omitempty"` // Publisher ID (e.g., ca-pub-1234)
	AdSenseSlot   string `bson:"adsense_slot,omitempty" json:"adsense_slot,omitempty"`     // Slot ID

	// Ad Manager configuration
	AdManagerSlot string `bson:"admanager_slot,omitempty" json:"admanager_slot,omitempty"` // Slot path (e.g., /30497360/a4a/amp_story_dfp_example)

	// Fallback content shown in place of an ad tag (sanitized HTML)
	FallbackHTML string `bson:"fallback_html,omitempty" json:"fallback_html,omitempty"`

	// Audit fields
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedBy string     `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// AdSenseConfigured returns true if both AdSense identifiers are present.
func (s *AdSettings) AdSenseConfigured() bool {
	return s.AdSenseClient != "" && s.AdSenseSlot != ""
}

// AdManagerConfigured returns true if an Ad Manager slot is present.
func (s *AdSettings) AdManagerConfigured() bool {
	return s.AdManagerSlot != ""
}
