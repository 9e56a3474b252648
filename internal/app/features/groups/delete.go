// internal/app/features/groups/delete.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDeleteGroup processes DELETE /group/{id}. Existence is verified
// first so a missing group surfaces as 404; membership rows for the group
// are removed with it.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := normalize.Param(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := groupstore.New(h.DB)

	if _, err := store.GetByID(ctx, id); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	if err := store.Delete(ctx, id); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	h.Log.Info("group deleted", zap.String("group_id", id))
	httpjson.OK(w, groupIDResponse{UUID: id})
}
