// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/storyads/internal/app/resources"
	"github.com/dalemusser/storyads/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates) and apply config-driven
// tuning that handlers rely on.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// The ad-config fetch timeout is config-driven; env vars can still
	// override the rest via timeouts.ConfigureFromEnv.
	timeouts.Configure(timeouts.Config{Fetch: appCfg.AdFetchTimeout})
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts configured from environment", zap.Int("count", n))
	}

	return nil
}
