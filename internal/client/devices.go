package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// DevicesClient implements xinca.DevicesClient.
type DevicesClient struct {
	resource.Read
	resource.Deleter
}

var _ xinca.DevicesClient = (*DevicesClient)(nil)

// NewDevicesClient creates a new devices client.
func NewDevicesClient(conn resource.Connection) *DevicesClient {
	return &DevicesClient{
		Read:    resource.NewRead(conn, constants.PathDevices),
		Deleter: resource.Deleter{Base: resource.NewBase(conn, constants.PathDevices)},
	}
}
