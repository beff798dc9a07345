package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/service"
)

// AvatarHandler serves the user's stored profile picture.
type AvatarHandler struct {
	avatars *service.AvatarService
}

// NewAvatarHandler creates a new AvatarHandler.
func NewAvatarHandler(avatars *service.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

// HandleAvatar returns the authenticated user's picture bytes.
// GET /avatar
func (h *AvatarHandler) HandleAvatar(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	data, contentType, err := h.avatars.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("get avatar", "error", err, "user_id", user.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.Write(data)
}
