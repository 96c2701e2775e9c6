package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dom/notes-website/internal/api/views"
	"github.com/dom/notes-website/internal/auth"
	"github.com/dom/notes-website/internal/service"
)

type AuthHandler struct {
	users *service.UserService
	guard *auth.Guard
	views *views.Views
}

func NewAuthHandler(users *service.UserService, guard *auth.Guard, views *views.Views) *AuthHandler {
	return &AuthHandler{users: users, guard: guard, views: views}
}

// AuthFormData drives the login and join templates. Field errors are
// mutually exclusive: only the first failing check is reported.
type AuthFormData struct {
	Email         string
	RedirectTo    string
	EmailError    string
	PasswordError string
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.guard.UserID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.views.Render(w, http.StatusOK, "login.html", AuthFormData{
		RedirectTo: r.URL.Query().Get("redirectTo"),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	redirectTo := auth.SafeRedirect(r.PostFormValue("redirectTo"), "/notes")
	remember := r.PostFormValue("remember") == "on"

	data := AuthFormData{Email: email, RedirectTo: r.PostFormValue("redirectTo")}

	if !auth.ValidateEmail(email) {
		data.EmailError = "Email is invalid"
		h.views.Render(w, http.StatusBadRequest, "login.html", data)
		return
	}
	if password == "" {
		data.PasswordError = "Password is required"
		h.views.Render(w, http.StatusBadRequest, "login.html", data)
		return
	}
	if len(password) < 8 {
		data.PasswordError = "Password is too short"
		h.views.Render(w, http.StatusBadRequest, "login.html", data)
		return
	}

	user, err := h.users.VerifyLogin(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			data.EmailError = "Invalid email or password"
			h.views.Render(w, http.StatusBadRequest, "login.html", data)
			return
		}
		log.Printf("ERROR [AuthHandler.Login] verify login: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	redirect, err := h.guard.CreateSession(user.ID, remember, redirectTo)
	if err != nil {
		log.Printf("ERROR [AuthHandler.Login] create session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	redirect.Write(w, r)
}

func (h *AuthHandler) JoinForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.guard.UserID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.views.Render(w, http.StatusOK, "join.html", AuthFormData{
		RedirectTo: r.URL.Query().Get("redirectTo"),
	})
}

func (h *AuthHandler) Join(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	redirectTo := auth.SafeRedirect(r.PostFormValue("redirectTo"), "/")

	data := AuthFormData{Email: email, RedirectTo: r.PostFormValue("redirectTo")}

	if !auth.ValidateEmail(email) {
		data.EmailError = "Email is invalid"
		h.views.Render(w, http.StatusBadRequest, "join.html", data)
		return
	}
	if password == "" {
		data.PasswordError = "Password is required"
		h.views.Render(w, http.StatusBadRequest, "join.html", data)
		return
	}
	if len(password) < 8 {
		data.PasswordError = "Password is too short"
		h.views.Render(w, http.StatusBadRequest, "join.html", data)
		return
	}

	user, err := h.users.Create(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			data.EmailError = "A user already exists with this email"
			h.views.Render(w, http.StatusBadRequest, "join.html", data)
			return
		}
		log.Printf("ERROR [AuthHandler.Join] create user: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Signup logs in immediately, without "remember me".
	redirect, err := h.guard.CreateSession(user.ID, false, redirectTo)
	if err != nil {
		log.Printf("ERROR [AuthHandler.Join] create session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	redirect.Write(w, r)
}

// Logout is POST-only; it clears the session cookie and sends the user
// back to the home page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.guard.Logout().Write(w, r)
}

// LogoutRedirect handles stray GETs to /logout without touching the session.
func (h *AuthHandler) LogoutRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}
