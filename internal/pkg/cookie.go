package pkg

import (
	"net/http"
	"time"
)

// SessionCookie binds a browser to its session id.
type SessionCookie struct {
	Name string
	TTL  time.Duration
}

// Read returns the session id carried by the request, if it holds a valid one.
func (that SessionCookie) Read(req *http.Request) (string, bool) {
	cookie, err := req.Cookie(that.Name)
	if err != nil || !IsValidSessionID(cookie.Value) {
		return "", false
	}

	return cookie.Value, true
}

// Issue creates a cookie for a brand new session.
func (that SessionCookie) Issue(now time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     that.Name,
		Value:    GenerateNewSessionID(),
		Path:     "/",
		Expires:  now.Add(that.TTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Resolve reads the session id or issues a new cookie on writer.
func (that SessionCookie) Resolve(writer http.ResponseWriter, req *http.Request) string {
	if id, ok := that.Read(req); ok {
		return id
	}

	cookie := that.Issue(time.Now())
	http.SetCookie(writer, cookie)

	return cookie.Value
}
