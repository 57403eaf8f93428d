package utils

import (
	"net/http"

	"github.com/gorilla/sessions"
)

type contextKey string

// UserKey carries the authenticated user resolved by the session gate.
const UserKey = contextKey("currentUser")

// RequestIDKey carries the per-request id injected by the middleware chain.
const RequestIDKey = contextKey("requestID")

const (
	sessionName    = "mccookies_session"
	sessionUserKey = "user_id"
)

var store *sessions.CookieStore

// InitSessionStore configures the signed-cookie session store. Must be called
// once at startup before any request is served.
func InitSessionStore(secretKey string, secureCookies bool) {
	store = sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// getSession always returns a usable session: a cookie that fails signature
// verification is treated as absent.
func getSession(r *http.Request) *sessions.Session {
	s, _ := store.Get(r, sessionName)
	return s
}

// SetSessionUser establishes an authenticated session for the given user id.
func SetSessionUser(w http.ResponseWriter, r *http.Request, userID uint) error {
	s := getSession(r)
	s.Values[sessionUserKey] = userID
	return s.Save(r, w)
}

// SessionUserID returns the authenticated user id, if any.
func SessionUserID(r *http.Request) (uint, bool) {
	s := getSession(r)
	v, ok := s.Values[sessionUserKey]
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// ClearSessionUser drops the authenticated identity. Calling it without an
// active session is a no-op with the same end state.
func ClearSessionUser(w http.ResponseWriter, r *http.Request) error {
	s := getSession(r)
	delete(s.Values, sessionUserKey)
	return s.Save(r, w)
}

// AddFlash queues a one-shot message for the next rendered page.
func AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	s := getSession(r)
	s.AddFlash(message)
	return s.Save(r, w)
}

// Flashes consumes and returns all queued flash messages.
func Flashes(w http.ResponseWriter, r *http.Request) []string {
	s := getSession(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}
