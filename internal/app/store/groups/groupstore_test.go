package groupstore_test

import (
	"errors"
	"testing"

	groupstore "github.com/dalemusser/rosterhub/internal/app/store/groups"
	membershipstore "github.com/dalemusser/rosterhub/internal/app/store/memberships"
	"github.com/dalemusser/rosterhub/internal/app/system/apperr"
	"github.com/dalemusser/rosterhub/internal/app/system/grouptypes"
	"github.com/dalemusser/rosterhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, grouptypes.Regular)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Name != grouptypes.Regular {
		t.Errorf("Name: got %q, want %q", created.Name, grouptypes.Regular)
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestStore_Create_UnknownName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, "superuser")
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, grouptypes.Admin); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, grouptypes.Admin)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestStore_NameExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.NameExists(ctx, grouptypes.Regular)
	if err != nil {
		t.Fatalf("NameExists failed: %v", err)
	}
	if exists {
		t.Error("expected NameExists to be false before Create")
	}

	if _, err := store.Create(ctx, grouptypes.Regular); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err = store.NameExists(ctx, grouptypes.Regular)
	if err != nil {
		t.Fatalf("NameExists failed: %v", err)
	}
	if !exists {
		t.Error("expected NameExists to be true after Create")
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, grouptypes.Regular)
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
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, "no-such-group")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, grouptypes.Regular); err != nil {
		t.Fatalf("Create regular failed: %v", err)
	}
	if _, err := store.Create(ctx, grouptypes.Admin); err != nil {
		t.Fatalf("Create admin failed: %v", err)
	}

	groups, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("len(groups): got %d, want 2", len(groups))
	}
}

func TestStore_ListAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.ListAll(ctx)
	if !errors.Is(err, apperr.ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
}

func TestStore_Rename(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, grouptypes.Regular)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	renamed, err := store.Rename(ctx, created.ID, grouptypes.Admin)
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != grouptypes.Admin {
		t.Errorf("Name: got %q, want %q", renamed.Name, grouptypes.Admin)
	}
	if renamed.ID != created.ID {
		t.Errorf("ID changed on rename: got %q, want %q", renamed.ID, created.ID)
	}
}

func TestStore_Rename_UnknownName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, grouptypes.Regular)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = store.Rename(ctx, created.ID, "superuser")
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestStore_Rename_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Rename(ctx, "no-such-group", grouptypes.Admin)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, grouptypes.Regular)
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
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Delete(ctx, "no-such-group")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete_CascadesMemberships(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	members := membershipstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	group, err := store.Create(ctx, grouptypes.Regular)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	user := fixtures.CreateUser(ctx, "cascade user")
	fixtures.CreateGroupMembership(ctx, user.ID, group.ID)

	if err := store.Delete(ctx, group.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	exists, err := members.Exists(ctx, user.ID, group.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected membership to be removed with the group")
	}
}
