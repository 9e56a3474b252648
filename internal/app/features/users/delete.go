// internal/app/features/users/delete.go
package users

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDeleteUser processes DELETE /user/{id}. Existence is verified first
// so a missing user surfaces as 404; the user's membership rows are removed
// with it. Any enrichment still in flight for the user becomes a no-op.
func (h *Handler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := normalize.Param(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := userstore.New(h.DB)

	if _, err := store.GetByID(ctx, id); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	h.Log.Info("user deleted", zap.String("user_id", id))
	httpjson.OK(w, userIDResponse{UUID: id})
}
