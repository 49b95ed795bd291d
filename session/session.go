// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session issues and reads the visitor session cookie.
package session

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// DefaultCookieName is used when a Manager has no cookie name configured
const DefaultCookieName = "sessionid"

// Manager issues and reads the session cookie
type Manager struct {
	CookieName string
	// MaxAge of the cookie in seconds; zero means a browser-session cookie
	MaxAge int
}

func NewManager(cookieName string) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Manager{CookieName: cookieName, MaxAge: 60 * 60 * 24 * 14}
}

// GenerateID creates a random 32-character session identifier
func GenerateID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Read returns the trimmed session cookie value when present
func (m *Manager) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(m.name())
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Ensure returns the request's session ID, issuing a new session cookie when
// the request has none. The new cookie is also attached to r so later reads
// in the same request see it.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) string {
	if id, ok := m.Read(r); ok {
		return id
	}

	id := GenerateID()
	cookie := &http.Cookie{
		Name:     m.name(),
		Value:    id,
		Path:     "/",
		MaxAge:   m.MaxAge,
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})

	return id
}

func (m *Manager) name() string {
	if m == nil || m.CookieName == "" {
		return DefaultCookieName
	}
	return m.CookieName
}

func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
