// internal/app/features/groups/edit.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type renameGroupRequest struct {
	Name string `json:"name"`
}

// HandleRenameGroup processes PUT /group/{id}. The target must exist and
// the new name must not already be taken; both are verified before the
// rename is applied.
func (h *Handler) HandleRenameGroup(w http.ResponseWriter, r *http.Request) {
	id := normalize.Param(chi.URLParam(r, "id"))

	var req renameGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	name := normalize.Name(req.Name)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)

	if _, err := store.GetByID(ctx, id); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	taken, err := store.NameExists(ctx, name)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	if taken {
		httpjson.Error(w, apperr.E(apperr.ErrConflict,
			"group with the name: %s already exist", name), h.Log)
		return
	}

	group, err := store.Rename(ctx, id, name)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	h.Log.Info("group renamed",
		zap.String("group_id", group.ID),
		zap.String("name", group.Name))
	httpjson.OK(w, groupIDResponse{UUID: group.ID})
}
