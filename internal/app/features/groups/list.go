// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

type groupResponse struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// HandleListGroups processes GET /group. Zero groups is an error response,
// not an empty list.
func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := groupstore.New(h.DB).ListAll(ctx)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	resp := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, groupResponse{UUID: g.ID, Name: g.Name})
	}
	httpjson.OK(w, resp)
}
