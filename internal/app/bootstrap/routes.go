// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	adminauthfeature "github.com/dalemusser/storyads/internal/app/features/adminauth"
	admanagerfeature "github.com/dalemusser/storyads/internal/app/features/admanager"
	adsensefeature "github.com/dalemusser/storyads/internal/app/features/adsense"
	adsenseremotefeature "github.com/dalemusser/storyads/internal/app/features/adsenseremote"
	adsettingsfeature "github.com/dalemusser/storyads/internal/app/features/adsettings"
	healthfeature "github.com/dalemusser/storyads/internal/app/features/health"
	storiesfeature "github.com/dalemusser/storyads/internal/app/features/stories"
	adsettingsstore "github.com/dalemusser/storyads/internal/app/store/adsettings"
	"github.com/dalemusser/storyads/internal/app/system/auth"
	"github.com/dalemusser/storyads/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. storyads mounts three independent ad
// fragment endpoints (AdSense from settings, AdSense via the remote
// ad-config API, Ad Manager), the demo story pages that consume them, and
// the session-gated admin settings API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	store := adsettingsstore.New(deps.StoryAdsMongoDatabase)

	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(sessionMgr.LoadSession)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.StoryAdsMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Ad tag fragments
	adsenseHandler := adsensefeature.NewHandler(store, appCfg.SiteID, logger)
	r.Mount("/ads/adsense", adsensefeature.Routes(adsenseHandler))

	admanagerHandler := admanagerfeature.NewHandler(store, appCfg.SiteID, logger)
	r.Mount("/ads/admanager", admanagerfeature.Routes(admanagerHandler))

	// The remote-fetch variant is only mounted when an ad-config API is
	// configured.
	if appCfg.AdAPIURLTemplate != "" {
		client := adsenseremotefeature.NewClient(
			appCfg.AdAPIURLTemplate,
			adAPIHTTPClient(appCfg),
			logger,
		)
		remoteHandler := adsenseremotefeature.NewHandler(
			store, client, appCfg.SiteID, appCfg.DefaultPropertyCode, logger)
		r.Mount("/ads/adsense-auto", adsenseremotefeature.Routes(remoteHandler))
	}

	// Demo story pages
	storiesHandler := storiesfeature.NewHandler(store, appCfg.SiteID, appCfg.Publisher, logger)
	r.Mount("/stories", storiesfeature.Routes(storiesHandler))

	// Admin settings API
	adminAuthHandler := adminauthfeature.NewHandler(sessionMgr, appCfg.AdminEmail, appCfg.AdminPasswordHash, logger)
	r.Mount("/admin", adminauthfeature.Routes(adminAuthHandler))

	settingsHandler := adsettingsfeature.NewHandler(store, appCfg.SiteID, logger)
	r.Mount("/admin/ad-settings", adsettingsfeature.Routes(settingsHandler))

	return r, nil
}

// adAPIHTTPClient returns the HTTP client for the ad-config API: an OAuth2
// client-credentials client when credentials are configured, otherwise the
// default client.
func adAPIHTTPClient(appCfg AppConfig) *http.Client {
	if appCfg.AdAPIClientID == "" {
		return http.DefaultClient
	}
	cc := &clientcredentials.Config{
		ClientID:     appCfg.AdAPIClientID,
		ClientSecret: appCfg.AdAPIClientSecret,
		TokenURL:     appCfg.AdAPITokenURL,
	}
	return cc.Client(context.Background())
}
