// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store owns the users collection. It also holds the memberships collection
// so deleting a user cascades the association rows.
type Store struct {
	c           *mongo.Collection
	memberships *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:           db.Collection("users"),
		memberships: db.Collection("group_memberships"),
	}
}

// GetByID loads a user, returning NotFound when the id has no row.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.E(apperr.ErrNotFound,
				"user with id %s does not exist", id)
		}
		return nil, err
	}
	return &u, nil
}

// GetByName looks up a user by exact name. Absence is (nil, nil), not an
// error; callers use this for duplicate detection before create.
func (s *Store) GetByName(ctx context.Context, name string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns every user. Zero rows is an EmptyResult error, not an
// empty slice; that contract is observable API behavior.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperr.E(apperr.ErrEmptyResult, "no user in the database")
	}
	return users, nil
}

// Create inserts a new user with a generated id. Callers are expected to
// have checked name uniqueness via GetByName first; the unique index turns
// a racing duplicate into a conflict here.
func (s *Store) Create(ctx context.Context, name string) (models.User, error) {
	now := time.Now().UTC()
	u := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, apperr.E(apperr.ErrConflict,
				"user with name: %s already exist in the database", name)
		}
		return models.User{}, err
	}
	return u, nil
}

// Rename updates the user's name and returns the updated row.
func (s *Store) Rename(ctx context.Context, id, newName string) (*models.User, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"name":       newName,
		"name_ci":    text.Fold(newName),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, apperr.E(apperr.ErrConflict,
				"user with name: %s already exist in the database", newName)
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, apperr.E(apperr.ErrNotFound, "user with id %s does not exist", id)
	}
	return s.GetByID(ctx, id)
}

// AttachEnrichment stores the fetched payload on the user. A user deleted
// between creation and the worker's write is a silent no-op: the worker
// runs after the request is gone and has nobody to report to.
func (s *Store) AttachEnrichment(ctx context.Context, id, payload string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"enrichment": payload,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// Delete removes the user row and then its membership rows.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.E(apperr.ErrNotFound, "user with id %s does not exist", id)
	}
	_, err = s.memberships.DeleteMany(ctx, bson.M{"user_id": id})
	return err
}
