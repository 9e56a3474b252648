// internal/app/features/users/create.go
package users

import (
	"context"
	"net/http"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	membershipstore "github.com/dalemusser/rosterhub/internal/app/store/memberships"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/httpjson"
	"github.com/dalemusser/rosterhub/internal/app/system/normalize"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type createUserRequest struct {
	UserName  string `json:"user_name"`
	UserGroup string `json:"user_group"`
}

// HandleCreateUser processes POST /user. The flow is: resolve the target
// group (404 if absent), reject a taken user name (conflict), create the
// user row plus its single membership row, then dispatch the enrichment
// worker. The response carries only the new id and returns before
// enrichment runs.
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	name := normalize.Name(req.UserName)
	groupID := normalize.Param(req.UserGroup)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	group, err := groupstore.New(h.DB).GetByID(ctx, groupID)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	usrStore := userstore.New(h.DB)

	existing, err := usrStore.GetByName(ctx, name)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	if existing != nil {
		httpjson.Error(w, apperr.E(apperr.ErrConflict,
			"user with name: %s already exist in the database", name), h.Log)
		return
	}

	user, err := usrStore.Create(ctx, name)
	if err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}
	if err := membershipstore.New(h.DB).Add(ctx, user.ID, group.ID); err != nil {
		httpjson.Error(w, err, h.Log)
		return
	}

	// Enqueue only after the create succeeded. The worker owns its own
	// context and store handle; this request does not wait for it.
	h.Enricher.Dispatch(user.ID)

	h.Log.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("name", user.Name),
		zap.String("group_id", group.ID))
	httpjson.OK(w, userIDResponse{UUID: user.ID})
}
