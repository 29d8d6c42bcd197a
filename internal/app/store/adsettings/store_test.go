package adsettingsstore_test

import (
	"testing"

	adsettingsstore "github.com/dalemusser/storyads/internal/app/store/adsettings"
	"github.com/dalemusser/storyads/internal/domain/models"
	"github.com/dalemusser/storyads/internal/testutil"
)

func TestStore_Get_NoSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adsettingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	settings, err := store.Get(ctx, "site-a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// Should return defaults
	if settings.SiteID != "site-a" {
		t.Errorf("SiteID: got %q, want %q", settings.SiteID, "site-a")
	}
	if settings.Network != models.DefaultNetwork {
		t.Errorf("Network: got %q, want default %q", settings.Network, models.DefaultNetwork)
	}
}

func TestStore_Save_NewSettings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adsettingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	settings := models.AdSettings{
		Network:       models.NetworkAdSense,
		AdSenseClient: "ca-pub-1234",
		AdSenseSlot:   "5678",
		UpdatedBy:     "admin@example.com",
	}

	if err := store.Save(ctx, "site-a", settings); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved, err := store.Get(ctx, "site-a")
	if err != nil {
		t.Fatalf("Get after Save failed: %v", err)
	}
	if saved.Network != models.NetworkAdSense {
		t.Errorf("Network: got %q, want %q", saved.Network, models.NetworkAdSense)
	}
	if saved.AdSenseClient != "ca-pub-1234" {
		t.Errorf("AdSenseClient: got %q", saved.AdSenseClient)
	}
	if saved.UpdatedAt == nil {
		t.Error("UpdatedAt should be stamped on save")
	}
}

func TestStore_Save_UpdatesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adsettingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := models.AdSettings{Network: models.NetworkAdSense, AdSenseClient: "a", AdSenseSlot: "1"}
	if err := store.Save(ctx, "site-a", first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := models.AdSettings{Network: models.NetworkAdManager, AdManagerSlot: "/1/a"}
	if err := store.Save(ctx, "site-a", second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	saved, err := store.Get(ctx, "site-a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if saved.Network != models.NetworkAdManager {
		t.Errorf("Network: got %q, want %q", saved.Network, models.NetworkAdManager)
	}
	if saved.AdManagerSlot != "/1/a" {
		t.Errorf("AdManagerSlot: got %q", saved.AdManagerSlot)
	}
}

func TestStore_SitesAreIndependent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adsettingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f := testutil.NewFixtures(t, db)
	f.CreateAdSenseSettings(ctx, "site-a", "ca-pub-1", "1")
	f.CreateAdManagerSettings(ctx, "site-b", "/1/b")

	a, err := store.Get(ctx, "site-a")
	if err != nil {
		t.Fatalf("Get site-a failed: %v", err)
	}
	b, err := store.Get(ctx, "site-b")
	if err != nil {
		t.Fatalf("Get site-b failed: %v", err)
	}

	if a.Network != models.NetworkAdSense || b.Network != models.NetworkAdManager {
		t.Errorf("settings crossed sites: a=%q b=%q", a.Network, b.Network)
	}
}

func TestStore_ExistsAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adsettingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx, "site-a")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected no settings initially")
	}

	if err := store.Save(ctx, "site-a", models.AdSettings{Network: models.NetworkNone}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	exists, err = store.Exists(ctx, "site-a")
	if err != nil {
		t.Fatalf("Exists after Save failed: %v", err)
	}
	if !exists {
		t.Error("expected settings to exist after Save")
	}

	if err := store.Delete(ctx, "site-a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	exists, err = store.Exists(ctx, "site-a")
	if err != nil {
		t.Fatalf("Exists after Delete failed: %v", err)
	}
	if exists {
		t.Error("expected settings removed after Delete")
	}
}
