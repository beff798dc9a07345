package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	// AvatarFilename and AvatarKey are set when the user uploads a
	// profile picture. Both are empty until then.
	AvatarFilename string
	AvatarKey      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// SetAvatar overwrites the user's picture reference. Calling it again
	// with the same values is a no-op.
	SetAvatar(ctx context.Context, id int64, filename, storageKey string) error
}
