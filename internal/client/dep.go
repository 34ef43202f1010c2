package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// DEPClient implements xinca.DEPClient. Enrollment-program records can be
// read and updated but not created or deleted through the API.
type DEPClient struct {
	resource.Read
	resource.Updater
}

var _ xinca.DEPClient = (*DEPClient)(nil)

// NewDEPClient creates a new enrollment-program client.
func NewDEPClient(conn resource.Connection) *DEPClient {
	return &DEPClient{
		Read:    resource.NewRead(conn, constants.PathDEP),
		Updater: resource.Updater{Base: resource.NewBase(conn, constants.PathDEP)},
	}
}
