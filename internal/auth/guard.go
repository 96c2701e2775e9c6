// Package auth decides who a request belongs to and what to do with
// requests that are not allowed to proceed. Guard methods never write
// to the response themselves; instead they return a *Redirect that the
// handler emits and then stops.
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/dom/notes-website/internal/domain"
	"github.com/dom/notes-website/internal/repository"
	"github.com/dom/notes-website/internal/session"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RememberDuration is how long a "remember me" session cookie lasts.
const RememberDuration = 7 * 24 * time.Hour

// Redirect is the short-circuit result of a guard check: emit this
// response and stop handling the request.
type Redirect struct {
	Location string
	// Cookie, when set, is attached as a Set-Cookie header. It carries
	// either a freshly minted session or the clearing cookie.
	Cookie *http.Cookie
}

func (rd *Redirect) Write(w http.ResponseWriter, r *http.Request) {
	if rd.Cookie != nil {
		http.SetCookie(w, rd.Cookie)
	}
	http.Redirect(w, r, rd.Location, http.StatusFound)
}

type Guard struct {
	codec *session.Codec
	users repository.UserRepository
}

func NewGuard(codec *session.Codec, users repository.UserRepository) *Guard {
	return &Guard{codec: codec, users: users}
}

// UserID returns the user id referenced by the session cookie without
// checking that the user still exists. Tampered or malformed cookies
// read as anonymous.
func (g *Guard) UserID(r *http.Request) (uuid.UUID, bool) {
	payload, ok := g.codec.Decode(r)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(payload.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// User resolves the current user. Anonymous requests return (nil, nil,
// nil). A cookie referencing a deleted user forces a logout: the
// returned redirect clears the session.
func (g *Guard) User(ctx context.Context, r *http.Request) (*domain.User, *Redirect, error) {
	id, ok := g.UserID(r)
	if !ok {
		return nil, nil, nil
	}

	user, err := g.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, g.Logout(), nil
		}
		return nil, nil, err
	}
	return user, nil, nil
}

// RequireUserID returns the authenticated user id, or a redirect to the
// login page carrying the path the caller was trying to reach so the
// login flow can send them back afterwards.
func (g *Guard) RequireUserID(r *http.Request) (uuid.UUID, *Redirect) {
	id, ok := g.UserID(r)
	if !ok {
		return uuid.Nil, LoginRedirect(r.URL.Path)
	}
	return id, nil
}

// RequireUser is RequireUserID plus a directory lookup. A stale session
// (user no longer exists) forces a logout instead of a login redirect.
func (g *Guard) RequireUser(ctx context.Context, r *http.Request) (*domain.User, *Redirect, error) {
	id, rd := g.RequireUserID(r)
	if rd != nil {
		return nil, rd, nil
	}

	user, err := g.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, g.Logout(), nil
		}
		return nil, nil, err
	}
	return user, nil, nil
}

// CreateSession mints a new session cookie for the user and redirects
// to redirectTo. The caller is expected to have run the target through
// SafeRedirect already.
func (g *Guard) CreateSession(userID uuid.UUID, remember bool, redirectTo string) (*Redirect, error) {
	var maxAge time.Duration
	if remember {
		maxAge = RememberDuration
	}

	cookie, err := g.codec.Encode(session.Payload{UserID: userID.String()}, maxAge)
	if err != nil {
		return nil, err
	}
	return &Redirect{Location: redirectTo, Cookie: cookie}, nil
}

// Logout clears the session cookie and redirects to the site root.
func (g *Guard) Logout() *Redirect {
	return &Redirect{Location: "/", Cookie: g.codec.Destroy()}
}

// LoginRedirect points an unauthenticated request at the login page,
// preserving the intended destination in the redirectTo query parameter.
func LoginRedirect(redirectTo string) *Redirect {
	params := url.Values{"redirectTo": {redirectTo}}
	return &Redirect{Location: "/login?" + params.Encode()}
}
