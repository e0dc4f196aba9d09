package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/socialsphere/app/internal/service"
	"github.com/socialsphere/app/internal/transport/http/middleware"
	"github.com/socialsphere/app/internal/transport/http/render"
	"github.com/socialsphere/app/pkg/validator"
)

type AuthHandler struct {
	auth     *service.AuthService
	renderer *render.Renderer
	secure   bool
}

func NewAuthHandler(auth *service.AuthService, renderer *render.Renderer, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		renderer: renderer,
		secure:   secureCookies,
	}
}

// Index renders the landing page with the registration form. Registered on
// the catch-all pattern, so anything but the root path is a 404.
func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.renderer.NotFound(w)
		return
	}
	h.renderer.HTML(w, http.StatusOK, "index.html", map[string]any{})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	input := service.RegisterInput{
		Username: r.FormValue("username"),
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if errs := validator.ValidateRegister(input.Username, input.Name, input.Email, r.FormValue("age"), input.Password); errs.HasErrors() {
		h.renderer.HTML(w, http.StatusBadRequest, "index.html", map[string]any{"Errors": errs})
		return
	}
	input.Age, _ = strconv.Atoi(r.FormValue("age"))

	_, tok, err := h.auth.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			http.Error(w, "User already registered", http.StatusBadRequest)
			return
		}
		internalError(w, h.renderer, "register", err)
		return
	}

	h.setSessionCookie(w, tok)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, http.StatusOK, "login.html", map[string]any{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	input := service.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		h.renderer.HTML(w, http.StatusBadRequest, "login.html", map[string]any{"Errors": errs})
		return
	}

	_, tok, err := h.auth.Login(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCreds):
			// A wrong password gets a bare redirect with no cookie and no
			// error text, so the response says nothing about which part of
			// the credentials failed.
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			internalError(w, h.renderer, "login", err)
		}
		return
	}

	h.setSessionCookie(w, tok)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// Logout clears the session cookie unconditionally. The token itself stays
// valid until it expires; there is no server-side invalidation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
