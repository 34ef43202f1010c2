package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// AppsClient implements xinca.AppsClient.
type AppsClient struct {
	resource.Read
}

var _ xinca.AppsClient = (*AppsClient)(nil)

// NewAppsClient creates a new apps client.
func NewAppsClient(conn resource.Connection) *AppsClient {
	return &AppsClient{Read: resource.NewRead(conn, constants.PathApps)}
}
