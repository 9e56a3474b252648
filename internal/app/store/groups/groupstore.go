// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/grouptypes"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store owns the groups collection. It also holds the memberships
// collection so deletes can cascade the association rows.
type Store struct {
	c           *mongo.Collection
	memberships *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:           db.Collection("groups"),
		memberships: db.Collection("group_memberships"),
	}
}

// Create inserts a new group with a generated id. The name must be in the
// allowed set; callers are expected to have run NameExists first, and the
// unique index turns a racing duplicate into a conflict here.
func (s *Store) Create(ctx context.Context, name string) (models.Group, error) {
	if !grouptypes.IsValid(name) {
		return models.Group{}, apperr.E(apperr.ErrInvalidArgument,
			"group name must be %s or %s", grouptypes.Regular, grouptypes.Admin)
	}

	now := time.Now().UTC()
	g := models.Group{
		ID:        uuid.NewString(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, apperr.E(apperr.ErrConflict,
				"group with the name: %s already exist", name)
		}
		return models.Group{}, err
	}
	return g, nil
}

// NameExists reports whether a group with the exact name already exists.
func (s *Store) NameExists(ctx context.Context, name string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"name": name}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID loads a group, returning NotFound when the id has no row.
func (s *Store) GetByID(ctx context.Context, id string) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Group{}, apperr.E(apperr.ErrNotFound,
				"group with id %s does not exist", id)
		}
		return models.Group{}, err
	}
	return g, nil
}

// ListAll returns every group. Zero rows is an EmptyResult error, not an
// empty slice; that contract is observable API behavior.
func (s *Store) ListAll(ctx context.Context) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperr.E(apperr.ErrEmptyResult, "no group in the database")
	}
	return groups, nil
}

// Rename updates the group's name. The new name must be in the allowed set;
// callers verify existence and name availability first, with the unique
// index as the backstop.
func (s *Store) Rename(ctx context.Context, id, newName string) (models.Group, error) {
	if !grouptypes.IsValid(newName) {
		return models.Group{}, apperr.E(apperr.ErrInvalidArgument,
			"group with name: %s must be %s or %s", newName, grouptypes.Regular, grouptypes.Admin)
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"name":       newName,
		"name_ci":    text.Fold(newName),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, apperr.E(apperr.ErrConflict,
				"group with the name: %s already exist", newName)
		}
		return models.Group{}, err
	}
	if res.MatchedCount == 0 {
		return models.Group{}, apperr.E(apperr.ErrNotFound,
			"group with id %s does not exist", id)
	}
	return s.GetByID(ctx, id)
}

// Delete removes the group row and then its membership rows. The cascade is
// best-effort ordered after the owning row; membership rows reference the
// group only by id, so leftovers from a crash cannot resurrect it.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.E(apperr.ErrNotFound, "group with id %s does not exist", id)
	}
	_, err = s.memberships.DeleteMany(ctx, bson.M{"group_id": id})
	return err
}
