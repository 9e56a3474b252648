// internal/domain/models/user.go
package models

import "time"

// User is a person managed by the service.
//
// NOTE:
//   - Group membership is not embedded on User. Use the group_memberships
//     collection to discover a user's groups.
//   - Enrichment holds the raw content fetched by the enrichment worker
//     after creation. It is empty until the worker completes, and stays
//     empty forever if the fetch fails; readers must tolerate that.
type User struct {
	ID         string `bson:"_id" json:"uuid"`
	Name       string `bson:"name" json:"name"`
	NameCI     string `bson:"name_ci" json:"-"`
	Enrichment string `bson:"enrichment,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}
