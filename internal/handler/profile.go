package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/service"
)

// ProfileHandler handles medical profile updates.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleUpdate validates and upserts the profile, then redirects back to
// the dashboard with a flash message either way.
// POST /profile
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		setFlash(w, "error", "The submitted form could not be read.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	_, err := h.profiles.Update(r.Context(), user.ID, service.ProfileInput{
		BloodGroup:        r.FormValue("blood_group"),
		Allergies:         r.FormValue("allergies"),
		EmergencyName:     r.FormValue("emergency_name"),
		EmergencyPhone:    r.FormValue("emergency_phone"),
		MedicalConditions: r.FormValue("medical_conditions"),
	})
	switch {
	case err == nil:
		setFlash(w, "success", "Medical profile updated successfully!")
	case errors.Is(err, domain.ErrInvalidInput):
		setFlash(w, "error", inputProblems(err))
	default:
		slog.Error("upsert profile", "error", err, "user_id", user.ID)
		setFlash(w, "error", "Failed to update profile. Please try again.")
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
