package handler

import (
	"net/http"

	"github.com/medcard/medcard/internal/service"
	"github.com/medcard/medcard/internal/view"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	profiles *service.ProfileService,
	cards *service.EmergencyService,
	avatars *service.AvatarService,
	loginLimiter *service.TokenBucket,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, avatars, loginLimiter, cookieSecure)
	dashboard := NewDashboardHandler(profiles)
	profile := NewProfileHandler(profiles)
	emergency := NewEmergencyHandler(profiles, cards)
	avatar := NewAvatarHandler(avatars)

	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(HandleHome)))
	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(view.StaticFS())))

	mux.HandleFunc("GET /register", authHandler.HandleRegisterPage)
	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("GET /login", authHandler.HandleLoginPage)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("GET /logout", authHandler.HandleLogout)

	mux.Handle("GET /dashboard", RequirePage(auth, http.HandlerFunc(dashboard.HandleDashboard)))
	mux.Handle("POST /profile", RequirePage(auth, http.HandlerFunc(profile.HandleUpdate)))
	mux.Handle("GET /qr-code", RequirePage(auth, http.HandlerFunc(emergency.HandleQRCode)))
	mux.Handle("GET /avatar", RequireAuth(auth, http.HandlerFunc(avatar.HandleAvatar)))
}
