// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	membershipstore "github.com/dalemusser/rosterhub/internal/app/store/memberships"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// HandleListUsers processes GET /user. Group names and enrichment payloads
// are resolved eagerly for every user. Zero users is an error response, not
// an empty list.
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	usersList, err := userstore.New(h.DB).ListAll(ctx)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	ids := make([]string, 0, len(usersList))
	for _, u := range usersList {
		ids = append(ids, u.ID)
	}
	namesByUser, err := membershipstore.New(h.DB).GroupNamesByUser(ctx, ids)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	resp := make([]userResponse, 0, len(usersList))
	for _, u := range usersList {
		resp = append(resp, toUserResponse(u, namesByUser[u.ID]))
	}
	httpjson.OK(w, resp)
}
