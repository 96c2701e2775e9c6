package handlers

import (
	"log"
	"net/http"

	"github.com/dom/notes-website/internal/api/views"
	"github.com/dom/notes-website/internal/auth"
	"github.com/dom/notes-website/internal/domain"
)

type HomeHandler struct {
	guard *auth.Guard
	views *views.Views
}

func NewHomeHandler(guard *auth.Guard, views *views.Views) *HomeHandler {
	return &HomeHandler{guard: guard, views: views}
}

type homeData struct {
	User *domain.User
}

// Home renders the landing page. The user is optional here, but a stale
// session still gets logged out rather than shown as anonymous.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	user, redirect, err := h.guard.User(r.Context(), r)
	if err != nil {
		log.Printf("ERROR [HomeHandler.Home] resolve user: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if redirect != nil {
		redirect.Write(w, r)
		return
	}

	h.views.Render(w, http.StatusOK, "home.html", homeData{User: user})
}
