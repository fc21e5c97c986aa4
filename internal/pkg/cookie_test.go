package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookie_Resolve(t *testing.T) {
	cookies := SessionCookie{Name: "ttt_session", TTL: time.Hour}

	t.Run("Existing valid cookie is reused", func(t *testing.T) {
		// Given: a request carrying a session cookie
		id := GenerateNewSessionID()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ttt_session", Value: id})
		rec := httptest.NewRecorder()

		// When: the session is resolved
		resolved := cookies.Resolve(rec, req)

		// Then: the same id comes back and no cookie is set
		assert.Equal(t, id, resolved)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Missing cookie issues a new one", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		resolved := cookies.Resolve(rec, req)

		issued := rec.Result().Cookies()
		require.Len(t, issued, 1)
		assert.Equal(t, "ttt_session", issued[0].Name)
		assert.Equal(t, resolved, issued[0].Value)
		assert.True(t, issued[0].HttpOnly)
	})

	t.Run("Tampered cookie is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ttt_session", Value: "../admin"})
		rec := httptest.NewRecorder()

		resolved := cookies.Resolve(rec, req)

		assert.NotEqual(t, "../admin", resolved)
		assert.True(t, IsValidSessionID(resolved))
	})
}
