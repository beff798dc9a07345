package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/medcard/medcard/internal/domain"
)

// maxAvatarSize caps uploaded profile pictures at 5MB.
const maxAvatarSize = 5 * 1024 * 1024

var allowedAvatarTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// AllowedAvatarType reports whether the content type is an accepted
// profile-picture format.
func AllowedAvatarType(contentType string) bool {
	return allowedAvatarTypes[contentType]
}

// AvatarService stores and serves user profile pictures.
type AvatarService struct {
	users domain.UserRepository
	files domain.FileStore
}

// NewAvatarService creates a new AvatarService.
func NewAvatarService(users domain.UserRepository, files domain.FileStore) *AvatarService {
	return &AvatarService{users: users, files: files}
}

// Upload validates and stores a profile picture, then records the reference
// on the user. A later upload replaces the reference; the old blob is
// removed best-effort.
func (s *AvatarService) Upload(ctx context.Context, userID int64, filename, contentType string, data []byte) error {
	if !AllowedAvatarType(contentType) {
		return fmt.Errorf("%w: only PNG, JPEG, and GIF images are accepted", domain.ErrInvalidInput)
	}
	if len(data) > maxAvatarSize {
		return fmt.Errorf("%w: picture exceeds 5MB limit", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	key := uuid.NewString()
	if err := s.files.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save picture: %w", err)
	}

	if err := s.users.SetAvatar(ctx, userID, filepath.Base(filename), key); err != nil {
		s.files.Delete(ctx, key)
		return fmt.Errorf("record picture reference: %w", err)
	}

	if user.AvatarKey != "" {
		s.files.Delete(ctx, user.AvatarKey)
	}

	return nil
}

// Get returns the user's picture bytes and a sniffed content type. Users
// without a picture get domain.ErrNotFound.
func (s *AvatarService) Get(ctx context.Context, userID int64) ([]byte, string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("get user: %w", err)
	}
	if user.AvatarKey == "" {
		return nil, "", domain.ErrNotFound
	}

	data, err := s.files.Get(ctx, user.AvatarKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("get picture: %w", err)
	}

	return data, http.DetectContentType(data), nil
}
