// Package view renders the HTML pages from embedded templates.
package view

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/service"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).ParseFS(files, "templates/*.html"))

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string // "success", "error", or "info"
	Message string
}

// AuthPage backs the register and login forms.
type AuthPage struct {
	Flashes []Flash
	Errors  []string
	Name    string
	Email   string
}

// DashboardPage backs the dashboard.
type DashboardPage struct {
	Flashes   []Flash
	UserName  string
	HasAvatar bool
	Profile   *domain.MedicalProfile
}

// QRPage backs the emergency QR code page.
type QRPage struct {
	UserName string
	QRBase64 string
	Card     service.EmergencyCard
}

// Render executes the named page template.
func Render(w io.Writer, page string, data any) error {
	return pages.ExecuteTemplate(w, page, data)
}
