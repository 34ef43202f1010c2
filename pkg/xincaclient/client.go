package xincaclient

import (
	"fmt"

	"github.com/fivetwenty-io/xinca/internal/client"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// New creates a new Xinca MDM API client. No request is made; invalid
// configuration is reported before any network activity.
func New(config *xinca.Config) (xinca.Client, error) {
	if config == nil {
		return nil, xinca.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithPassword creates a new client using HTTP Basic authentication. An
// empty server selects the default.
func NewWithPassword(server, username, password string) (xinca.Client, error) {
	return New(&xinca.Config{
		Server:   server,
		Username: username,
		Password: password,
	})
}

// NewWithSession creates a new client that sends every request through an
// already authenticated session.
func NewWithSession(server string, session xinca.Session) (xinca.Client, error) {
	return New(&xinca.Config{
		Server:  server,
		Session: session,
	})
}
