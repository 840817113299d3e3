package controllers

import (
	"errors"
	"net/http"

	"inkpress/app/middleware"
	"inkpress/app/models"
	"inkpress/app/services"
	"inkpress/app/sessions"

	"github.com/rs/zerolog"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	auth     *services.AuthService
	manager  *sessions.Manager
	renderer *Renderer
	log      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(auth *services.AuthService, manager *sessions.Manager, renderer *Renderer, log zerolog.Logger) *AuthController {
	return &AuthController{auth: auth, manager: manager, renderer: renderer, log: log}
}

// Register handles GET (form) and POST (create account + log in).
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if middleware.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		ac.renderer.Render(w, r, "register", registerData{Form: &models.RegisterForm{}})
		return
	}

	form := models.NewRegisterForm(r)
	if !form.Validate() {
		ac.renderer.Render(w, r, "register", registerData{Form: form})
		return
	}

	user, err := ac.auth.Register(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			sessions.SetFlash(w, "An account with that email already exists. Log in instead.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ac.log.Error().Err(err).Msg("registration failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := ac.manager.Login(w, user.ID); err != nil {
		ac.log.Error().Err(err).Msg("session creation failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Login handles GET (form) and POST (credential check + session).
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		ac.renderer.Render(w, r, "login", loginData{Form: &models.LoginForm{}})
		return
	}

	form := models.NewLoginForm(r)
	if !form.Validate() {
		ac.renderer.Render(w, r, "login", loginData{Form: form})
		return
	}

	user, err := ac.auth.Authenticate(form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		sessions.SetFlash(w, "That email is not registered. Register first.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, services.ErrWrongPassword):
		ac.renderer.RenderNotice(w, r, "login", loginData{Form: form}, "Password incorrect. Try again.")
		return
	case err != nil:
		ac.log.Error().Err(err).Msg("login failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := ac.manager.Login(w, user.ID); err != nil {
		ac.log.Error().Err(err).Msg("session creation failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and returns home.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.manager.Logout(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type registerData struct {
	Form *models.RegisterForm
}

type loginData struct {
	Form *models.LoginForm
}
