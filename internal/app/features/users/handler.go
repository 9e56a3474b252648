// internal/app/features/users/handler.go
package users

import (
	"github.com/dalemusser/rosterhub/internal/app/system/enrich"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the users feature. Besides
// the Mongo database and logger it carries the enrichment worker, which the
// create handler dispatches after a successful insert.
type Handler struct {
	DB       *mongo.Database
	Enricher *enrich.Enricher
	Log      *zap.Logger
}

// NewHandler constructs a users Handler. It is typically called from the
// bootstrap BuildHandler function, where the application's DB, enrichment
// worker, and logger are already initialized.
func NewHandler(db *mongo.Database, enricher *enrich.Enricher, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Enricher: enricher,
		Log:      logger,
	}
}
