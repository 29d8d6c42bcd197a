// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body size limits.
// AppConfig is where everything specific to storyads lives: the settings
// database, the admin identity, and the ad-network knobs.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration (admin settings API)
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for admin sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Admin identity for the settings API. Login is disabled when either
	// value is empty.
	AdminEmail        string // Admin login email
	AdminPasswordHash string // bcrypt hash of the admin password

	// Site identity
	SiteID    string // Site whose ad settings this instance serves
	Publisher string // Publisher name stamped on story pages

	// Remote ad-config API (the AdSense API-fetch variant). The remote
	// fragment endpoint is only mounted when the URL template is set.
	AdAPIURLTemplate  string        // URL template with one %s for the property code
	AdAPIClientID     string        // OAuth2 client-credentials ID (optional)
	AdAPIClientSecret string        // OAuth2 client-credentials secret (optional)
	AdAPITokenURL     string        // OAuth2 token endpoint (optional)
	AdFetchTimeout    time.Duration // Timeout for the outbound ad-config fetch

	// Property code fallback used when neither the request host nor the
	// "id" query parameter yields a numeric code.
	DefaultPropertyCode string
}
