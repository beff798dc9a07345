package handler

import (
	"log/slog"
	"net/http"

	"github.com/medcard/medcard/internal/view"
)

// renderPage executes a view template with the given status code, logging
// render failures. Headers are already written by then, so a failed render
// cannot be rewritten into an error response.
func renderPage(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.Render(w, page, data); err != nil {
		slog.Error("render page", "page", page, "error", err)
	}
}
