package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/medcard/medcard/internal/view"
)

const flashCookie = "flash"

// setFlash queues a one-shot message in a short-lived cookie; the next
// rendered page pops and displays it.
func setFlash(w http.ResponseWriter, kind, message string) {
	payload, err := json.Marshal([]view.Flash{{Kind: kind, Message: message}})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300,
	})
}

// popFlashes reads and clears any queued flash messages. Garbage cookie
// values are silently dropped.
func popFlashes(w http.ResponseWriter, r *http.Request) []view.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flashes []view.Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
