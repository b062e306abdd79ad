package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const sessionCookieName = "scrandle_session"

const sessionMaxAge = 30 * 24 * time.Hour

// ensureSession returns the caller's session id, minting a cookie on the
// first request. The id is opaque; the browser holding the cookie is the
// whole identity model.
func ensureSession(w http.ResponseWriter, r *http.Request, secure bool) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
	return id
}

// currentSession reads the session id without minting one. Empty string
// means the caller has never played.
func currentSession(r *http.Request) string {
	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
