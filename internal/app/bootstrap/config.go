// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for RosterHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, enrich_url, etc.
//   - Environment variables: ROSTERHUB_MONGO_URI, ROSTERHUB_ENRICH_URL, etc.
//   - Command-line flags: --mongo_uri, --enrich_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "rosterhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Enrichment worker
	{Name: "enrich_url", Default: "https://api.github.com/", Desc: "URL fetched to enrich a newly created user"},
	{Name: "enrich_timeout", Default: "15s", Desc: "Budget for one enrichment fetch-and-store pass (e.g., 15s, 1m)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have access
// to configuration before any backends or handlers are built. CoreConfig
// comes from the shared WAFFLE layer; AppConfig is specific to this app.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ROSTERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		EnrichURL:     appValues.String("enrich_url"),
		EnrichTimeout: appValues.Duration("enrich_timeout", 15*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// RosterHub validates the MongoDB URI format and the enrichment URL early,
// before attempting to connect to anything.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	u, err := url.Parse(appCfg.EnrichURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("enrich_url must be an absolute URL, got %q", appCfg.EnrichURL)
	}

	if appCfg.EnrichTimeout <= 0 {
		return fmt.Errorf("enrich_timeout must be positive, got %s", appCfg.EnrichTimeout)
	}

	return nil
}
