package models_test

import (
	"testing"

	"github.com/dalemusser/storyads/internal/domain/models"
)

func TestValidNetwork(t *testing.T) {
	for _, valid := range []string{models.NetworkNone, models.NetworkAdSense, models.NetworkAdManager} {
		if !models.ValidNetwork(valid) {
			t.Errorf("ValidNetwork(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "popunder", "AdSense", "doubleclick"} {
		if models.ValidNetwork(invalid) {
			t.Errorf("ValidNetwork(%q) = true, want false", invalid)
		}
	}
}

func TestAdSenseConfigured(t *testing.T) {
	s := models.AdSettings{AdSenseClient: "ca-pub-1", AdSenseSlot: "1"}
	if !s.AdSenseConfigured() {
		t.Error("expected configured")
	}

	s.AdSenseSlot = ""
	if s.AdSenseConfigured() {
		t.Error("expected not configured without a slot")
	}
}

func TestAdManagerConfigured(t *testing.T) {
	s := models.AdSettings{}
	if s.AdManagerConfigured() {
		t.Error("expected not configured without a slot")
	}

	s.AdManagerSlot = "/1/a"
	if !s.AdManagerConfigured() {
		t.Error("expected configured")
	}
}
