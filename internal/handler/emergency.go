package handler

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/service"
	"github.com/medcard/medcard/internal/view"
)

// EmergencyHandler renders the emergency QR code page.
type EmergencyHandler struct {
	profiles *service.ProfileService
	cards    *service.EmergencyService
}

// NewEmergencyHandler creates a new EmergencyHandler.
func NewEmergencyHandler(profiles *service.ProfileService, cards *service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{profiles: profiles, cards: cards}
}

// HandleQRCode renders the QR code built from the user's profile alongside
// the plaintext data it encodes. Users without a profile are sent back to
// the dashboard to create one first.
// GET /qr-code
func (h *EmergencyHandler) HandleQRCode(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profiles.Get(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			setFlash(w, "error", "Please create your medical profile first")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		slog.Error("get profile for qr code", "error", err, "user_id", user.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	card := h.cards.Card(user.Name, profile)
	png, err := h.cards.EncodePNG(card)
	if err != nil {
		if errors.Is(err, domain.ErrPayloadTooLarge) {
			setFlash(w, "error", "Your medical data is too large to fit in a QR code. Try shortening the lists.")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		slog.Error("encode qr code", "error", err, "user_id", user.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderPage(w, http.StatusOK, "qr_code.html", view.QRPage{
		UserName: user.Name,
		QRBase64: base64.StdEncoding.EncodeToString(png),
		Card:     card,
	})
}
