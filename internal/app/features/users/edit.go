// internal/app/features/users/edit.go
package users

import (
	"context"
	"net/http"

	membershipstore "github.com/dalemusser/rosterhub/internal/app/store/memberships"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type renameUserRequest struct {
	UserName  string `json:"user_name"`
	GroupName string `json:"group_name"`
}

// HandleRenameUser processes PUT /user/{id}. The rename is gated on the
// user currently being a member of the caller-specified group; the check
// does not mutate membership.
func (h *Handler) HandleRenameUser(w http.ResponseWriter, r *http.Request) {
	id := normalize.Param(chi.URLParam(r, "id"))

	var req renameUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	name := normalize.Name(req.UserName)
	groupName := normalize.Name(req.GroupName)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	usrStore := userstore.New(h.DB)
	memStore := membershipstore.New(h.DB)

	user, err := usrStore.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	member, err := memStore.IsMemberOf(ctx, user.ID, groupName)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	if !member {
		httpjson.Error(w, apperr.E(apperr.ErrInvalidArgument,
			"group %s does not part of the user id %s", groupName, user.ID), h.Log)
		return
	}

	updated, err := usrStore.Rename(ctx, id, name)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	names, err := memStore.GroupNamesForUser(ctx, updated.ID)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	h.Log.Info("user renamed",
		zap.String("user_id", updated.ID),
		zap.String("name", updated.Name))
	httpjson.OK(w, toUserResponse(*updated, names))
}
