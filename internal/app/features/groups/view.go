// internal/app/features/groups/view.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleGetGroup processes GET /group/{id}.
func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	id := normalize.Param(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	group, err := groupstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	httpjson.OK(w, groupResponse{UUID: group.ID, Name: group.Name})
}
