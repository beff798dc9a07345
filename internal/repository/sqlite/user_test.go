package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpw",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "test@example.com")

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "dup@example.com")

	err := db.Users().Create(ctx, &domain.User{
		Name:         "Other User",
		Email:        "dup@example.com",
		PasswordHash: "hash2",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "byid@example.com")

	found, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if found.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, found.Email)
	}
	if found.Name != user.Name {
		t.Fatalf("expected name %q, got %q", user.Name, found.Name)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "byemail@example.com")

	found, err := db.Users().GetByEmail(ctx, "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}

	if found.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, found.ID)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByEmail(context.Background(), "nonexistent@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_SetAvatar(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "avatar@example.com")

	if err := db.Users().SetAvatar(ctx, user.ID, "me.png", "key-1"); err != nil {
		t.Fatalf("SetAvatar: %v", err)
	}

	found, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.AvatarFilename != "me.png" || found.AvatarKey != "key-1" {
		t.Fatalf("expected avatar me.png/key-1, got %q/%q", found.AvatarFilename, found.AvatarKey)
	}

	// Overwriting is idempotent and replaces the previous reference.
	if err := db.Users().SetAvatar(ctx, user.ID, "new.jpg", "key-2"); err != nil {
		t.Fatalf("SetAvatar overwrite: %v", err)
	}
	found, err = db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.AvatarFilename != "new.jpg" || found.AvatarKey != "key-2" {
		t.Fatalf("expected avatar new.jpg/key-2, got %q/%q", found.AvatarFilename, found.AvatarKey)
	}
}

func TestUserRepository_SetAvatar_UnknownUser(t *testing.T) {
	db := newTestDB(t)

	err := db.Users().SetAvatar(context.Background(), 99999, "x.png", "key")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
