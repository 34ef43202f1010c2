package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// UsersClient implements xinca.UsersClient.
type UsersClient struct {
	resource.CRUD
}

var _ xinca.UsersClient = (*UsersClient)(nil)

// NewUsersClient creates a new users client.
func NewUsersClient(conn resource.Connection) *UsersClient {
	return &UsersClient{CRUD: resource.NewCRUD(conn, constants.PathUsers)}
}
