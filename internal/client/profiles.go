package client

import (
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// ProfilesClient implements xinca.ProfilesClient.
type ProfilesClient struct {
	resource.Read
}

var _ xinca.ProfilesClient = (*ProfilesClient)(nil)

// NewProfilesClient creates a new profiles client.
func NewProfilesClient(conn resource.Connection) *ProfilesClient {
	return &ProfilesClient{Read: resource.NewRead(conn, constants.PathProfiles)}
}
