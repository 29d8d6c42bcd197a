// internal/app/store/adsettings/store.go
package adsettingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/storyads/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the ad_settings collection.
// Each site has its own settings document (one document per site_id).
type Store struct {
	c *mongo.Collection
}

// New creates a new ad settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("ad_settings")}
}

// Get returns the ad settings for a specific site.
// If no settings exist for the site, returns default settings (ads disabled).
func (s *Store) Get(ctx context.Context, siteID string) (models.AdSettings, error) {
	var settings models.AdSettings
	filter := bson.M{"site_id": siteID}
	err := s.c.FindOne(ctx, filter).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		// Return default settings for this site
		return models.AdSettings{
			SiteID:  siteID,
			Network: models.DefaultNetwork,
		}, nil
	}
	if err != nil {
		return models.AdSettings{}, err
	}
	return settings, nil
}

// Save updates the ad settings for a specific site.
// Uses upsert so it works whether settings exist or not.
func (s *Store) Save(ctx context.Context, siteID string, settings models.AdSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now
	settings.SiteID = siteID

	// Use upsert with site_id filter
	filter := bson.M{"site_id": siteID}
	update := bson.M{
		"$set": bson.M{
			"site_id":        siteID,
			"network":        settings.Network,
			"adsense_client": settings.AdSenseClient,
			"adsense_slot":   settings.AdSenseSlot,
			"admanager_slot": settings.AdManagerSlot,
			"fallback_html":  settings.FallbackHTML,
			"updated_at":     settings.UpdatedAt,
			"updated_by":     settings.UpdatedBy,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Exists checks if settings have been saved for a specific site.
func (s *Store) Exists(ctx context.Context, siteID string) (bool, error) {
	filter := bson.M{"site_id": siteID}
	count, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes settings for a specific site.
// Used when decommissioning a site.
func (s *Store) Delete(ctx context.Context, siteID string) error {
	filter := bson.M{"site_id": siteID}
	_, err := s.c.DeleteOne(ctx, filter)
	return err
}
