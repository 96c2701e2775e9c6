package auth

import "strings"

const defaultRedirect = "/"

// SafeRedirect vets a user-provided redirect target (the redirectTo
// query/form value on the login and signup pages). Anything that is not
// a same-site path falls back to the default: empty values, absolute
// URLs, and protocol-relative "//host" URLs which browsers treat as a
// different origin. This is the open-redirect guard.
func SafeRedirect(to, fallback string) string {
	if fallback == "" {
		fallback = defaultRedirect
	}
	if to == "" {
		return fallback
	}
	if !strings.HasPrefix(to, "/") || strings.HasPrefix(to, "//") {
		return fallback
	}
	return to
}

// ValidateEmail applies the same minimal check the signup form does:
// longer than three characters and containing an "@".
func ValidateEmail(email string) bool {
	return len(email) > 3 && strings.Contains(email, "@")
}
