// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store owns the group_memberships collection: one row per
// (user_id, group_id) pair, no payload. It also holds the users and groups
// collections so Add can enforce that both ends of a new row are live.
type Store struct {
	c      *mongo.Collection
	users  *mongo.Collection
	groups *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:      db.Collection("group_memberships"),
		users:  db.Collection("users"),
		groups: db.Collection("groups"),
	}
}

// Add creates a membership after verifying both referenced rows exist.
// A duplicate pair is a conflict (the unique index enforces it under races).
func (s *Store) Add(ctx context.Context, userID, groupID string) error {
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.E(apperr.ErrNotFound, "user with id %s does not exist", userID)
		}
		return err
	}
	if err := s.groups.FindOne(ctx, bson.M{"_id": groupID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.E(apperr.ErrNotFound, "group with id %s does not exist", groupID)
		}
		return err
	}

	doc := models.GroupMembership{
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		if wafflemongo.IsDup(err) {
			return apperr.E(apperr.ErrConflict,
				"user %s is already a member of group %s", userID, groupID)
		}
		return err
	}
	return nil
}

// Exists checks if a membership exists for the given user and group.
func (s *Store) Exists(ctx context.Context, userID, groupID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "group_id": groupID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GroupNamesForUser resolves the names of every group the user belongs to.
// Order is not significant.
func (s *Store) GroupNamesForUser(ctx context.Context, userID string) ([]string, error) {
	byUser, err := s.GroupNamesByUser(ctx, []string{userID})
	if err != nil {
		return nil, err
	}
	return byUser[userID], nil
}

// GroupNamesByUser resolves group names for a batch of users in two queries:
// one over the membership rows, one over the referenced groups. Users with
// no memberships (or whose groups were deleted out from under them) map to
// an empty slice.
func (s *Store) GroupNamesByUser(ctx context.Context, userIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(userIDs))
	for _, id := range userIDs {
		result[id] = []string{}
	}
	if len(userIDs) == 0 {
		return result, nil
	}

	cur, err := s.c.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.GroupMembership
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return result, nil
	}

	groupIDs := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if !seen[row.GroupID] {
			seen[row.GroupID] = true
			groupIDs = append(groupIDs, row.GroupID)
		}
	}

	gcur, err := s.groups.Find(ctx, bson.M{"_id": bson.M{"$in": groupIDs}})
	if err != nil {
		return nil, err
	}
	defer gcur.Close(ctx)

	var groups []models.Group
	if err := gcur.All(ctx, &groups); err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(groups))
	for _, g := range groups {
		nameByID[g.ID] = g.Name
	}

	for _, row := range rows {
		name, ok := nameByID[row.GroupID]
		if !ok {
			continue // dangling row from an interrupted cascade
		}
		result[row.UserID] = append(result[row.UserID], name)
	}
	return result, nil
}

// IsMemberOf reports whether any of the user's memberships points at a
// group with the given name.
func (s *Store) IsMemberOf(ctx context.Context, userID, groupName string) (bool, error) {
	names, err := s.GroupNamesForUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == groupName {
			return true, nil
		}
	}
	return false, nil
}

// DeleteByUser removes all memberships for a user.
// Returns the number of documents deleted.
func (s *Store) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByGroup removes all memberships for a group.
// Returns the number of documents deleted.
func (s *Store) DeleteByGroup(ctx context.Context, groupID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"group_id": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
