// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// appConfigKeys defines the configuration keys for storyads.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, site_id, etc.
//   - Environment variables: STORYADS_MONGO_URI, STORYADS_SITE_ID, etc.
//   - Command-line flags: --mongo_uri, --site_id, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "storyads", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Admin session configuration
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "storyads-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Admin identity; login is disabled when either value is blank
	{Name: "admin_email", Default: "", Desc: "Admin login email for the settings API"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the admin password"},

	// Site identity
	{Name: "site_id", Default: "default", Desc: "Site whose ad settings this instance serves"},
	{Name: "publisher", Default: "StoryAds", Desc: "Publisher name stamped on story pages"},

	// Remote ad-config API (AdSense API-fetch variant)
	{Name: "ad_api_url_template", Default: "", Desc: "Ad-config API URL template with one %s for the property code (blank disables the remote variant)"},
	{Name: "ad_api_client_id", Default: "", Desc: "OAuth2 client-credentials ID for the ad-config API (optional)"},
	{Name: "ad_api_client_secret", Default: "", Desc: "OAuth2 client-credentials secret for the ad-config API (optional)"},
	{Name: "ad_api_token_url", Default: "", Desc: "OAuth2 token endpoint for the ad-config API (optional)"},
	{Name: "ad_fetch_timeout", Default: "5s", Desc: "Timeout for the outbound ad-config fetch (e.g., 5s, 500ms)"},

	// Property code fallback. The historical default is "4239"; see DESIGN.md.
	{Name: "default_property_code", Default: "4239", Desc: "Fallback property code when the request yields none"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STORYADS_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STORYADS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AdminEmail:        appValues.String("admin_email"),
		AdminPasswordHash: appValues.String("admin_password_hash"),

		SiteID:    appValues.String("site_id"),
		Publisher: appValues.String("publisher"),

		AdAPIURLTemplate:  appValues.String("ad_api_url_template"),
		AdAPIClientID:     appValues.String("ad_api_client_id"),
		AdAPIClientSecret: appValues.String("ad_api_client_secret"),
		AdAPITokenURL:     appValues.String("ad_api_token_url"),
		AdFetchTimeout:    appValues.Duration("ad_fetch_timeout", 5*time.Second),

		DefaultPropertyCode: appValues.String("default_property_code"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.SiteID == "" {
		return fmt.Errorf("site_id must not be empty")
	}

	// The remote variant needs a well-formed URL template: exactly one %s.
	if tpl := appCfg.AdAPIURLTemplate; tpl != "" {
		if strings.Count(tpl, "%s") != 1 {
			return fmt.Errorf("ad_api_url_template must contain exactly one %%s placeholder")
		}
		if (appCfg.AdAPIClientID != "") != (appCfg.AdAPIClientSecret != "") {
			return fmt.Errorf("ad_api_client_id and ad_api_client_secret must be set together")
		}
		if appCfg.AdAPIClientID != "" && appCfg.AdAPITokenURL == "" {
			return fmt.Errorf("ad_api_token_url is required when ad-config API credentials are set")
		}
	}

	// Catch a malformed admin hash at startup instead of at first login.
	if appCfg.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(appCfg.AdminPasswordHash)); err != nil {
			return fmt.Errorf("admin_password_hash is not a valid bcrypt hash: %w", err)
		}
	}

	if appCfg.DefaultPropertyCode == "" {
		return fmt.Errorf("default_property_code must not be empty")
	}

	return nil
}
