package api

import (
	"net/http"

	"github.com/dom/notes-website/internal/api/handlers"
	"github.com/dom/notes-website/internal/api/middleware"
	"github.com/dom/notes-website/internal/api/views"
	"github.com/dom/notes-website/internal/auth"
	"github.com/dom/notes-website/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(services *service.Services, guard *auth.Guard, v *views.Views, db *gorm.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.User, guard, v)
	noteHandler := handlers.NewNoteHandler(services.Note, v)
	homeHandler := handlers.NewHomeHandler(guard, v)
	healthHandler := handlers.NewHealthHandler(db)

	r.Get("/", homeHandler.Home)
	r.Get("/healthcheck", healthHandler.Check)

	// Public auth routes
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Get("/join", authHandler.JoinForm)
	r.Post("/join", authHandler.Join)
	r.Post("/logout", authHandler.Logout)
	r.Get("/logout", authHandler.LogoutRedirect)

	// Protected routes
	r.Route("/notes", func(r chi.Router) {
		r.Use(middleware.RequireUser(guard))

		r.Get("/", noteHandler.List)
		r.Get("/new", noteHandler.NewForm)
		r.Post("/new", noteHandler.Create)
		r.Get("/{noteID}", noteHandler.Get)
		r.Post("/{noteID}", noteHandler.Delete)
	})

	return r
}
