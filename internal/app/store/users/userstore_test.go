package userstore_test

import (
	"errors"
	"testing"

	membershipstore "github.com/dalemusser/rosterhub/internal/app/store/memberships"
	userstore "github.com/dalemusser/rosterhub/internal/app/store/users"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Ada Lovelace" {
		t.Errorf("Name: got %q, want %q", created.Name, "Ada Lovelace")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.Enrichment != "" {
		t.Errorf("expected empty enrichment on create, got %q", created.Enrichment)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "Ada Lovelace"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, "Ada Lovelace")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Name != created.Name {
		t.Errorf("Name: got %q, want %q", found.Name, created.Name)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, "no-such-user")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByName(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected a user, got nil")
	}
	if found.ID != created.ID {
		t.Errorf("ID: got %q, want %q", found.ID, created.ID)
	}
}

func TestStore_GetByName_Absent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	found, err := store.GetByName(ctx, "Nobody Here")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for absent name, got %+v", found)
	}
}

func TestStore_ListAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "User One"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, "User Two"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	users, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len(users): got %d, want 2", len(users))
	}
}

func TestStore_ListAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.ListAll(ctx)
	if !errors.Is(err, apperr.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
}

func TestStore_Rename(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	renamed, err := store.Rename(ctx, created.ID, "Grace Hopper")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "Grace Hopper" {
		t.Errorf("Name: got %q, want %q", renamed.Name, "Grace Hopper")
	}
	if renamed.ID != created.ID {
		t.Errorf("ID changed on rename: got %q, want %q", renamed.ID, created.ID)
	}
}

func TestStore_Rename_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Rename(ctx, "no-such-user", "Grace Hopper")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AttachEnrichment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	payload := `{"current_user_url": "https://api.github.com/user"}`
	if err := store.AttachEnrichment(ctx, created.ID, payload); err != nil {
		t.Fatalf("AttachEnrichment failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Enrichment != payload {
		t.Errorf("Enrichment: got %q, want %q", found.Enrichment, payload)
	}
}

func TestStore_AttachEnrichment_UserGone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Writing a payload for a user that no longer exists is a no-op.
	if err := store.AttachEnrichment(ctx, "no-such-user", `{"ok": true}`); err != nil {
		t.Errorf("expected silent no-op, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, "Ada Lovelace")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = store.GetByID(ctx, created.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Delete(ctx, "no-such-user")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete_CascadesMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	members := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user, err := store.Create(ctx, "Cascade User")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	group := fixtures.CreateGroup(ctx, "regular")
	fixtures.CreateGroupMembership(ctx, user.ID, group.ID)

	if err := store.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	exists, err := members.Exists(ctx, user.ID, group.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected membership to be removed with the user")
	}
}
