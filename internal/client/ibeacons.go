package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// IBeaconsClient implements xinca.IBeaconsClient.
type IBeaconsClient struct {
	resource.CRUD
}

var _ xinca.IBeaconsClient = (*IBeaconsClient)(nil)

// NewIBeaconsClient creates a new iBeacons client.
func NewIBeaconsClient(conn resource.Connection) *IBeaconsClient {
	return &IBeaconsClient{CRUD: resource.NewCRUD(conn, constants.PathIBeacons)}
}
