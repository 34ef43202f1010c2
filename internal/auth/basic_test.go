package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAuthSession_Do(t *testing.T) {
	t.Parallel()

	t.Run("attaches credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "admin", username)
			assert.Equal(t, "s3cret", password)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		session, err := NewBasicAuthSession(server.Client(), "admin", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "admin", session.Username())

		req, err := http.NewRequest(http.MethodGet, server.URL+"/devices", nil)
		require.NoError(t, err)

		resp, err := session.Do(req)
		require.NoError(t, err)

		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, req.Header.Get("Authorization"), "original request must be left untouched")
	})

	t.Run("requires a session to wrap", func(t *testing.T) {
		t.Parallel()

		_, err := NewBasicAuthSession(nil, "admin", "s3cret")
		require.ErrorIs(t, err, ErrNoSession)
	})
}
