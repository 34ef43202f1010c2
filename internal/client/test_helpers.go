package client

import (
	"github.com/fivetwenty-io/xinca/internal/http"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// NewTestClient creates a client for baseURL that sends through session
// without validating any configuration.
func NewTestClient(baseURL string, session xinca.Session, opts ...http.Option) *Client {
	httpClient := http.NewClient(baseURL, session, opts...)

	client := &Client{
		httpClient: httpClient,
		server:     baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}
