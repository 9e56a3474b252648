// internal/app/features/users/view.go
package users

import (
	"context"
	"net/http"

	membershipstore "github.com/dalemusser/rosterhub/internal/app/store/memberships"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleGetUser processes GET /user/{id}.
func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id := normalize.Param(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := userstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	names, err := membershipstore.New(h.DB).GroupNamesForUser(ctx, user.ID)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	httpjson.OK(w, toUserResponse(*user, names))
}
