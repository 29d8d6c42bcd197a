package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/storyads/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAdSettings inserts an ad settings document for the given site.
func (f *Fixtures) CreateAdSettings(ctx context.Context, siteID string, settings models.AdSettings) models.AdSettings {
	f.t.Helper()

	now := time.Now().UTC()
	settings.ID = primitive.NewObjectID()
	settings.SiteID = siteID
	settings.UpdatedAt = &now

	_, err := f.db.Collection("ad_settings").InsertOne(ctx, settings)
	if err != nil {
		f.t.Fatalf("failed to create test ad settings: %v", err)
	}

	return settings
}

// CreateAdSenseSettings inserts settings with AdSense selected and configured.
func (f *Fixtures) CreateAdSenseSettings(ctx context.Context, siteID, client, slot string) models.AdSettings {
	f.t.Helper()
	return f.CreateAdSettings(ctx, siteID, models.AdSettings{
		Network:       models.NetworkAdSense,
		AdSenseClient: client,
		AdSenseSlot:   slot,
	})
}

// CreateAdManagerSettings inserts settings with Ad Manager selected.
func (f *Fixtures) CreateAdManagerSettings(ctx context.Context, siteID, slot string) models.AdSettings {
	f.t.Helper()
	return f.CreateAdSettings(ctx, siteID, models.AdSettings{
		Network:       models.NetworkAdManager,
		AdManagerSlot: slot,
	})
}
