package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dom/notes-website/internal/api/middleware"
	"github.com/dom/notes-website/internal/api/views"
	"github.com/dom/notes-website/internal/domain"
	"github.com/dom/notes-website/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NoteHandler struct {
	notes *service.NoteService
	views *views.Views
}

func NewNoteHandler(notes *service.NoteService, views *views.Views) *NoteHandler {
	return &NoteHandler{notes: notes, views: views}
}

type noteListData struct {
	User  *domain.User
	Notes []*domain.Note
}

type noteDetailData struct {
	User *domain.User
	Note *domain.Note
}

type noteFormData struct {
	Title      string
	Body       string
	TitleError string
	BodyError  string
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := h.notes.List(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [NoteHandler.List] list notes: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "notes.html", noteListData{User: user, Notes: notes})
}

func (h *NoteHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "note_new.html", noteFormData{})
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	data := noteFormData{Title: title, Body: body}
	if title == "" {
		data.TitleError = "Title is required"
		h.views.Render(w, http.StatusBadRequest, "note_new.html", data)
		return
	}
	if body == "" {
		data.BodyError = "Body is required"
		h.views.Render(w, http.StatusBadRequest, "note_new.html", data)
		return
	}

	note, err := h.notes.Create(r.Context(), user.ID, title, body)
	if err != nil {
		log.Printf("ERROR [NoteHandler.Create] create note: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/notes/"+note.ID.String(), http.StatusFound)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		h.renderNotFound(w)
		return
	}

	note, err := h.notes.Get(r.Context(), noteID, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			h.renderNotFound(w)
			return
		}
		log.Printf("ERROR [NoteHandler.Get] get note: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.views.Render(w, http.StatusOK, "note.html", noteDetailData{User: user, Note: note})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
	if err != nil {
		h.renderNotFound(w)
		return
	}

	if err := h.notes.Delete(r.Context(), noteID, user.ID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			h.renderNotFound(w)
			return
		}
		log.Printf("ERROR [NoteHandler.Delete] delete note: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/notes", http.StatusFound)
}

func (h *NoteHandler) renderNotFound(w http.ResponseWriter) {
	h.views.Render(w, http.StatusNotFound, "notfound.html", map[string]string{
		"Message": "Note not found",
	})
}
