package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// GroupsClient implements xinca.GroupsClient.
type GroupsClient struct {
	resource.CRUD
}

var _ xinca.GroupsClient = (*GroupsClient)(nil)

// NewGroupsClient creates a new user groups client.
func NewGroupsClient(conn resource.Connection) *GroupsClient {
	return &GroupsClient{CRUD: resource.NewCRUD(conn, constants.PathGroups)}
}
