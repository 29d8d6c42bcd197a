package bootstrap

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func validAppConfig(t *testing.T) AppConfig {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}

	return AppConfig{
		MongoURI:            "mongodb://localhost:27017",
		MongoDatabase:       "storyads",
		SiteID:              "default",
		AdminEmail:          "admin@example.com",
		AdminPasswordHash:   string(hash),
		AdAPIURLTemplate:    "https://ads.example.com/v1/h/%s",
		AdFetchTimeout:      5 * time.Second,
		DefaultPropertyCode: "4239",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(t), zap.NewNop()); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateConfig_EmptySiteID(t *testing.T) {
	cfg := validAppConfig(t)
	cfg.SiteID = ""

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for empty site_id")
	}
}

func TestValidateConfig_URLTemplatePlaceholders(t *testing.T) {
	for _, tpl := range []string{
		"https://ads.example.com/v1/h",    // no placeholder
		"https://ads.example.com/%s/h/%s", // two placeholders
	} {
		cfg := validAppConfig(t)
		cfg.AdAPIURLTemplate = tpl

		if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
			t.Errorf("expected error for template %q", tpl)
		}
	}
}

func TestValidateConfig_EmptyTemplateDisablesRemote(t *testing.T) {
	cfg := validAppConfig(t)
	cfg.AdAPIURLTemplate = ""

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Errorf("blank template should be accepted (remote variant disabled), got %v", err)
	}
}

func TestValidateConfig_PartialAPICredentials(t *testing.T) {
	cfg := validAppConfig(t)
	cfg.AdAPIClientID = "client-id"

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for client ID without secret")
	}

	cfg.AdAPIClientSecret = "client-secret"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for credentials without token URL")
	}

	cfg.AdAPITokenURL = "https://ads.example.com/oauth/token"
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Errorf("expected valid config with full credentials, got %v", err)
	}
}

func TestValidateConfig_BadAdminHash(t *testing.T) {
	cfg := validAppConfig(t)
	cfg.AdminPasswordHash = "plaintext-password"

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for non-bcrypt admin hash")
	}
}

func TestValidateConfig_EmptyDefaultPropertyCode(t *testing.T) {
	cfg := validAppConfig(t)
	cfg.DefaultPropertyCode = ""

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for empty default_property_code")
	}
}
