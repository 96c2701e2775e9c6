package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/dom/notes-website/internal/auth"
	"github.com/dom/notes-website/internal/domain"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// RequireUser guards a route subtree behind authentication. Anonymous
// requests are redirected to the login page with the requested path
// preserved; a session referencing a deleted user is logged out. The
// resolved user is stored in the request context.
func RequireUser(guard *auth.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, redirect, err := guard.RequireUser(r.Context(), r)
			if err != nil {
				log.Printf("ERROR [middleware.RequireUser] failed to resolve user: %v", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
			if redirect != nil {
				redirect.Write(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
