package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/medcard/medcard/internal/domain"
	"github.com/medcard/medcard/internal/service"
	"github.com/medcard/medcard/internal/view"
)

const (
	sessionCookie = "auth_token"
	// maxRegisterForm bounds the in-memory size of the multipart
	// registration form (picture included).
	maxRegisterForm = 8 << 20
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	avatars      *service.AvatarService
	loginLimiter *service.TokenBucket
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, avatars *service.AvatarService, loginLimiter *service.TokenBucket, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, avatars: avatars, loginLimiter: loginLimiter, cookieSecure: cookieSecure}
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "register.html", view.AuthPage{Flashes: popFlashes(w, r)})
}

// HandleRegister processes the registration form, including the optional
// profile picture. Validation and conflict failures redisplay the form;
// success redirects to the login page.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	// Plain form posts (no picture) are fine too.
	if err := r.ParseMultipartForm(maxRegisterForm); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.registerError(w, r, "The submitted form could not be read.")
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	// Validate the picture before touching the user store so a bad file
	// never leaves a half-registered account.
	picture, pictureName, err := readUpload(r, "profile_picture")
	if err != nil {
		h.registerError(w, r, "The profile picture could not be read.", name, email)
		return
	}
	if picture != nil && !service.AllowedAvatarType(http.DetectContentType(picture)) {
		h.registerError(w, r, "Invalid file type. Please upload PNG, JPG, or GIF files only.", name, email)
		return
	}

	user, err := h.auth.Register(r.Context(), name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.registerError(w, r, inputProblems(err), name, email)
		case errors.Is(err, domain.ErrDuplicateEmail):
			h.registerError(w, r, "Email already registered.", name, email)
		default:
			slog.Error("register user", "error", err)
			h.registerError(w, r, "Registration failed. Please try again.", name, email)
		}
		return
	}

	if picture != nil {
		if err := h.avatars.Upload(r.Context(), user.ID, pictureName, http.DetectContentType(picture), picture); err != nil {
			// The account exists; losing the picture is not fatal.
			slog.Error("save profile picture", "error", err, "user_id", user.ID)
		}
	}

	setFlash(w, "success", "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "login.html", view.AuthPage{Flashes: popFlashes(w, r)})
}

// HandleLogin verifies credentials and establishes the session cookie.
// Unknown email and wrong password get the same generic message.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.loginError(w, r, "")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if !h.loginLimiter.Allow(clientIP(r)) {
		h.loginError(w, r, email)
		return
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			slog.Error("login user", "error", err)
		}
		h.loginError(w, r, email)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours, matches the token expiry
	})

	if userID, err := h.auth.ValidateToken(token); err == nil {
		if user, err := h.auth.GetUserByID(r.Context(), userID); err == nil {
			setFlash(w, "success", fmt.Sprintf("Welcome back, %s!", user.Name))
		}
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleLogout clears the session cookie immediately.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	setFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) registerError(w http.ResponseWriter, r *http.Request, message string, keep ...string) {
	page := view.AuthPage{Errors: strings.Split(message, "; ")}
	if len(keep) > 0 {
		page.Name = keep[0]
	}
	if len(keep) > 1 {
		page.Email = keep[1]
	}
	renderPage(w, http.StatusUnprocessableEntity, "register.html", page)
}

func (h *AuthHandler) loginError(w http.ResponseWriter, r *http.Request, email string) {
	renderPage(w, http.StatusUnauthorized, "login.html", view.AuthPage{
		Errors: []string{"Invalid email or password"},
		Email:  email,
	})
}

// inputProblems extracts the human-readable detail from an ErrInvalidInput.
func inputProblems(err error) string {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, domain.ErrInvalidInput.Error()+": "); ok {
		return detail
	}
	return msg
}

// readUpload returns the named file's bytes and filename, or (nil, "", nil)
// when the field was left empty.
func readUpload(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", nil
	}
	return data, header.Filename, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
