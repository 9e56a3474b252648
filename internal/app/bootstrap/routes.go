// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	groupsfeature "github.com/dalemusser/rosterhub/internal/app/features/groups"
	healthfeature "github.com/dalemusser/rosterhub/internal/app/features/health"
	usersfeature "github.com/dalemusser/rosterhub/internal/app/features/users"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/enrich"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. RosterHub mounts three feature routers:
// health, groups, and users. The enrichment worker is built here with its
// own store handle; it runs after the triggering request's scope is gone,
// so it must not share the request's unit of work.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	enricher := enrich.New(
		appCfg.EnrichURL,
		appCfg.EnrichTimeout,
		userstore.New(deps.MongoDatabase),
		logger,
	)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Group management
	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/group", groupsfeature.Routes(groupsHandler))

	// User management (create dispatches the enrichment worker)
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, enricher, logger)
	r.Mount("/user", usersfeature.Routes(usersHandler))

	return r, nil
}
