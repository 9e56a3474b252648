package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/rosterhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateGroup creates a test group with the given name.
// Returns the created group with its generated id.
func (f *Fixtures) CreateGroup(ctx context.Context, name string) models.Group {
	f.t.Helper()

	now := time.Now().UTC()
	group := models.Group{
		ID:        uuid.NewString(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("groups").InsertOne(ctx, group)
	if err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}

	return group
}

// CreateUser creates a test user with the given name and no memberships.
func (f *Fixtures) CreateUser(ctx context.Context, name string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		NameCI:    text.Fold(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateUserWithEnrichment creates a test user that already carries an
// enrichment payload, as if the worker had completed.
func (f *Fixtures) CreateUserWithEnrichment(ctx context.Context, name, payload string) models.User {
	f.t.Helper()

	user := f.CreateUser(ctx, name)
	_, err := f.db.Collection("users").UpdateByID(ctx, user.ID,
		map[string]any{"$set": map[string]any{"enrichment": payload}})
	if err != nil {
		f.t.Fatalf("failed to attach test enrichment: %v", err)
	}
	user.Enrichment = payload
	return user
}

// CreateGroupMembership creates a membership record linking a user to a group.
func (f *Fixtures) CreateGroupMembership(ctx context.Context, userID, groupID string) models.GroupMembership {
	f.t.Helper()

	membership := models.GroupMembership{
		UserID:    userID,
		GroupID:   groupID,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("group_memberships").InsertOne(ctx, membership)
	if err != nil {
		f.t.Fatalf("failed to create test group membership: %v", err)
	}

	return membership
}
