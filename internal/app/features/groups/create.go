// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

type groupIDResponse struct {
	UUID string `json:"uuid"`
}

// HandleCreateGroup processes POST /group. The name must not already be
// taken (checked before any write) and must be in the allowed set.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	name := normalize.Name(req.Name)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupstore.New(h.DB)

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

	group, err := store.Create(ctx, name)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	h.Log.Info("group created",
		zap.String("group_id", group.ID),
		zap.String("name", group.Name))
	httpjson.OK(w, groupIDResponse{UUID: group.ID})
}
