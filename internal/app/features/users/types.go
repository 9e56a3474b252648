// internal/app/features/users/types.go
package users

import (
	"encoding/json"

	"github.com/dalemusser/rosterhub/internal/domain/models"
)

type userIDResponse struct {
	UUID string `json:"uuid"`
}

// userResponse is the read projection: id, name, resolved group names, and
// the enrichment payload. URL is null while enrichment is pending (or
// failed); callers must tolerate that transient state.
type userResponse struct {
	UUID      string          `json:"uuid"`
	Name      string          `json:"name"`
	GroupName []string        `json:"group_name"`
	URL       json.RawMessage `json:"url"`
}

// toUserResponse builds the projection for one user. The stored enrichment
// payload is passed through as a JSON value when it parses as one; anything
// else (including the empty pre-enrichment state) renders as null.
func toUserResponse(u models.User, groupNames []string) userResponse {
	if groupNames == nil {
		groupNames = []string{}
	}
	resp := userResponse{
		UUID:      u.ID,
		Name:      u.Name,
		GroupName: groupNames,
		URL:       json.RawMessage("null"),
	}
	if u.Enrichment != "" && json.Valid([]byte(u.Enrichment)) {
		resp.URL = json.RawMessage(u.Enrichment)
	}
	return resp
}
