package adfilters_test

import (
	"testing"

	"github.com/dalemusser/storyads/internal/app/system/adfilters"
)

func TestApply_NoFilters(t *testing.T) {
	adfilters.Reset()
	t.Cleanup(adfilters.Reset)

	attrs := map[string]string{"type": "doubleclick"}
	got := adfilters.Apply("empty_chain", attrs)

	if got["type"] != "doubleclick" {
		t.Errorf("expected attrs unchanged, got %v", got)
	}
}

func TestApply_AddsAndReplaces(t *testing.T) {
	adfilters.Reset()
	t.Cleanup(adfilters.Reset)

	adfilters.Register("chain", func(attrs map[string]string) map[string]string {
		attrs["data-extra"] = "1"
		return attrs
	})
	adfilters.Register("chain", func(attrs map[string]string) map[string]string {
		attrs["type"] = "custom"
		return attrs
	})

	got := adfilters.Apply("chain", map[string]string{"type": "doubleclick"})

	if got["type"] != "custom" {
		t.Errorf("type: got %q, want %q", got["type"], "custom")
	}
	if got["data-extra"] != "1" {
		t.Errorf("data-extra: got %q, want %q", got["data-extra"], "1")
	}
}

func TestApply_RemovesKey(t *testing.T) {
	adfilters.Reset()
	t.Cleanup(adfilters.Reset)

	adfilters.Register("chain", func(attrs map[string]string) map[string]string {
		delete(attrs, "type")
		return attrs
	})

	got := adfilters.Apply("chain", map[string]string{"type": "doubleclick", "data-slot": "/1/a"})

	if _, ok := got["type"]; ok {
		t.Error("expected type key removed")
	}
	if got["data-slot"] != "/1/a" {
		t.Errorf("data-slot: got %q, want %q", got["data-slot"], "/1/a")
	}
}

func TestRegister_NilFilterIgnored(t *testing.T) {
	adfilters.Reset()
	t.Cleanup(adfilters.Reset)

	adfilters.Register("chain", nil)

	got := adfilters.Apply("chain", map[string]string{"type": "doubleclick"})
	if got["type"] != "doubleclick" {
		t.Errorf("expected attrs unchanged, got %v", got)
	}
}

func TestApply_ChainsAreIndependent(t *testing.T) {
	adfilters.Reset()
	t.Cleanup(adfilters.Reset)

	adfilters.Register("a", func(attrs map[string]string) map[string]string {
		attrs["touched"] = "yes"
		return attrs
	})

	got := adfilters.Apply("b", map[string]string{})
	if _, ok := got["touched"]; ok {
		t.Error("filter registered on chain a ran on chain b")
	}
}
