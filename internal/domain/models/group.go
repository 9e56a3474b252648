// internal/domain/models/group.go
package models

import "time"

// Group is a named cohort users can belong to.
//
// NOTE:
//   - Membership is not embedded on Group. All membership lives in the
//     group_memberships collection.
//   - The id is an opaque UUID string generated at creation, stored as _id.
//   - Name is globally unique and restricted to the closed set in the
//     grouptypes package ("regular" | "admin").
type Group struct {
	ID     string `bson:"_id" json:"uuid"`
	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}
