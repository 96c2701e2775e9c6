package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dom/notes-website/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertRedirect verifies a 302 response pointing at the given location
func AssertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, http.StatusFound, resp.StatusCode, "expected a redirect")
	assert.Equal(t, location, resp.Header.Get("Location"), "unexpected redirect location")
}

// AssertBodyContains reads the response body and checks for a substring
func AssertBodyContains(t *testing.T, resp *http.Response, substring string) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	assert.Contains(t, string(body), substring, "body missing expected content")
}

// SessionCookie extracts the session cookie from a response, or nil
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// AssertSessionSet verifies the response sets a non-empty session cookie
// and returns it
func AssertSessionSet(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	cookie := SessionCookie(resp)
	require.NotNil(t, cookie, "expected a session cookie")
	assert.NotEmpty(t, cookie.Value, "session cookie should not be empty")
	assert.True(t, cookie.HttpOnly, "session cookie must be http-only")
	assert.Equal(t, "/", cookie.Path, "session cookie path")
	return cookie
}

// AssertSessionCleared verifies the response clears the session cookie
func AssertSessionCleared(t *testing.T, resp *http.Response) {
	t.Helper()

	cookie := SessionCookie(resp)
	require.NotNil(t, cookie, "expected a clearing session cookie")
	assert.Empty(t, cookie.Value, "clearing cookie should have no value")
	assert.True(t, cookie.MaxAge < 0 || !cookie.Expires.IsZero(), "clearing cookie must expire immediately")
}

// TamperCookie flips one character of a cookie value
func TamperCookie(cookie *http.Cookie) *http.Cookie {
	tampered := *cookie
	if len(tampered.Value) > 0 {
		replacement := "A"
		if strings.HasPrefix(tampered.Value, "A") {
			replacement = "B"
		}
		tampered.Value = replacement + tampered.Value[1:]
	}
	return &tampered
}
