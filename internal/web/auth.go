package web

import (
	"net/http"
	"time"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/service"
)

// SessionCookie holds the admin session JWT.
const SessionCookie = "caloria_session"

// AuthHandler handles the admin login and logout pages.
type AuthHandler struct {
	auth     *service.AuthService
	renderer *Renderer
	flash    *FlashStore
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, renderer *Renderer, flash *FlashStore) *AuthHandler {
	return &AuthHandler{auth: auth, renderer: renderer, flash: flash}
}

// LoginPage handles GET /admin/login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if _, err := h.auth.VerifyToken(cookie.Value); err == nil {
			http.Redirect(w, r, Route("admin_dashboard"), http.StatusSeeOther)
			return
		}
	}
	h.renderer.Render(w, http.StatusOK, "login", Page{
		Title:   "Admin Login — Caloria",
		Flashes: h.flash.Pop(w, r),
	})
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.flash.Add(w, r, "error", "Invalid form submission.")
		http.Redirect(w, r, Route("admin_login"), http.StatusSeeOther)
		return
	}

	form := service.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	token, err := h.auth.Login(r.Context(), form)
	if err != nil {
		message := "Login failed."
		if appErr, ok := domain.AsAppError(err); ok {
			message = appErr.Message
		}
		h.flash.Add(w, r, "error", message)
		http.Redirect(w, r, Route("admin_login"), http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	http.Redirect(w, r, Route("admin_dashboard"), http.StatusSeeOther)
}

// Logout handles POST /admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	h.flash.Add(w, r, "success", "You have been logged out.")
	http.Redirect(w, r, Route("admin_login"), http.StatusSeeOther)
}
