// Package auth provides the authenticating session used when a client is
// configured with a username and password.
package auth

import (
	"errors"
	"net/http"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// Static errors for err113 compliance.
var (
	ErrNoSession = errors.New("no session to wrap")
)

// BasicAuthSession attaches HTTP basic credentials to every request it
// forwards to the wrapped session.
type BasicAuthSession struct {
	next     xinca.Session
	username string
	password string
}

// NewBasicAuthSession wraps next so that every request carries the given
// credentials.
func NewBasicAuthSession(next xinca.Session, username, password string) (*BasicAuthSession, error) {
	if next == nil {
		return nil, ErrNoSession
	}

	return &BasicAuthSession{
		next:     next,
		username: username,
		password: password,
	}, nil
}

// Username returns the account the session authenticates as.
func (s *BasicAuthSession) Username() string {
	return s.username
}

// Do implements xinca.Session. The caller's request is not modified.
func (s *BasicAuthSession) Do(req *http.Request) (*http.Response, error) {
	authed := req.Clone(req.Context())
	authed.SetBasicAuth(s.username, s.password)

	return s.next.Do(authed)
}
