// internal/domain/models/groupmembership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupMembership is the authoritative join between users and groups.
// Exactly one document per (user_id, group_id); the pair carries no payload.
// Both referenced rows must exist when the membership is created, and
// membership rows are deleted together with their owning user or group.
type GroupMembership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	GroupID   string             `bson:"group_id" json:"group_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
