package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/service"
	"github.com/medcard/medcard/internal/view"
)

// DashboardHandler renders the dashboard page.
type DashboardHandler struct {
	profiles *service.ProfileService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(profiles *service.ProfileService) *DashboardHandler {
	return &DashboardHandler{profiles: profiles}
}

// HandleDashboard shows the user's medical profile, or the empty state when
// none exists yet.
// GET /dashboard
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profiles.Get(r.Context(), user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Error("get profile for dashboard", "error", err, "user_id", user.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, "dashboard.html", view.DashboardPage{
		Flashes:   popFlashes(w, r),
		UserName:  user.Name,
		HasAvatar: user.AvatarKey != "",
		Profile:   profile,
	})
}
