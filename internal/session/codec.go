// Package session encodes the authenticated user's id into a signed,
// client-held cookie. There is no server-side session table: a cookie
// that verifies against one of the configured secrets is the session.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "__session"

const userIDClaim = "userId"

// Payload is the decoded session content.
type Payload struct {
	UserID string
}

// Codec signs and verifies session cookies. The first secret signs new
// cookies; all secrets are accepted during verification so that an old
// secret can stay in the list while a rotation is rolled out.
type Codec struct {
	secrets [][]byte
	secure  bool
}

func NewCodec(secrets []string, secure bool) (*Codec, error) {
	if len(secrets) == 0 {
		return nil, errors.New("session: at least one signing secret is required")
	}
	keys := make([][]byte, 0, len(secrets))
	for _, s := range secrets {
		if s == "" {
			return nil, errors.New("session: signing secret must not be empty")
		}
		keys = append(keys, []byte(s))
	}
	return &Codec{secrets: keys, secure: secure}, nil
}

// Decode extracts the session payload from the request's cookie. A
// missing cookie, a bad signature, an expired token, or a malformed
// payload all mean "no session"; tampering is never surfaced as an error.
func (c *Codec) Decode(r *http.Request) (Payload, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Payload{}, false
	}

	for _, secret := range c.secrets {
		token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			continue
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			continue
		}
		userID, ok := claims[userIDClaim].(string)
		if !ok || userID == "" {
			continue
		}
		return Payload{UserID: userID}, true
	}

	return Payload{}, false
}

// Encode signs the payload with the primary secret and returns the
// cookie to set. maxAge zero means a session cookie that expires when
// the browser closes; a positive maxAge makes the cookie (and the
// signed token) expire after that duration.
func (c *Codec) Encode(payload Payload, maxAge time.Duration) (*http.Cookie, error) {
	claims := jwt.MapClaims{
		userIDClaim: payload.UserID,
		"iat":       time.Now().Unix(),
	}
	if maxAge > 0 {
		claims["exp"] = time.Now().Add(maxAge).Unix()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secrets[0])
	if err != nil {
		return nil, err
	}

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge / time.Second)
		cookie.Expires = time.Now().Add(maxAge)
	}
	return cookie, nil
}

// Destroy returns a cookie that immediately clears the session.
func (c *Codec) Destroy() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.secure,
	}
}
