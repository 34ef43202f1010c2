package client

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/fivetwenty-io/xinca/internal/auth"
	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/internal/http"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// Client implements the xinca.Client interface.
type Client struct {
	httpClient *http.Client
	server     string
	logger     xinca.Logger

	// Resource clients
	apps     *AppsClient
	dep      *DEPClient
	devices  *DevicesClient
	profiles *ProfilesClient
	users    *UsersClient
	groups   *GroupsClient
	iBeacons *IBeaconsClient
}

var _ xinca.Client = (*Client)(nil)

// New creates a client from config. No request is made.
func New(config *xinca.Config) (*Client, error) {
	if config == nil {
		return nil, xinca.ErrConfigRequired
	}

	resolved, err := resolveConfig(*config)
	if err != nil {
		return nil, err
	}

	session, err := createSession(resolved)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(resolved.Server, session, createHTTPClientOptions(resolved)...)

	client := &Client{
		httpClient: httpClient,
		server:     resolved.Server,
		logger:     resolved.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// createSession returns the configured session or builds the default one
// authenticated with the configured credentials.
func createSession(config xinca.Config) (xinca.Session, error) {
	if config.Session != nil {
		return config.Session, nil
	}

	var sessionOpts []http.SessionOption

	if config.Logger != nil {
		sessionOpts = append(sessionOpts, http.WithSessionLogger(config.Logger, config.Debug))
	}

	if config.InsecureSkipVerify {
		sessionOpts = append(sessionOpts, http.WithInsecureSkipVerify())
	}

	session, err := auth.NewBasicAuthSession(http.NewSession(sessionOpts...), config.Username, config.Password)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return session, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config xinca.Config) []http.Option {
	httpOpts := []http.Option{http.WithTimeout(config.Timeout)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.TracerProvider != nil {
		httpOpts = append(httpOpts, http.WithTracerProvider(config.TracerProvider))
	}

	return httpOpts
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv(constants.DevModeEnv)

	return devMode == "true" || devMode == "1"
}

func (c *Client) initializeResourceClients() {
	c.apps = NewAppsClient(c.httpClient)
	c.dep = NewDEPClient(c.httpClient)
	c.devices = NewDevicesClient(c.httpClient)
	c.profiles = NewProfilesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.iBeacons = NewIBeaconsClient(c.httpClient)
}

// Server implements xinca.Client.Server.
func (c *Client) Server() string {
	return c.server
}

// String describes the connection without credentials.
func (c *Client) String() string {
	return "Xinca MDM API - Server: " + c.server
}

// Get implements xinca.Connection.Get.
func (c *Client) Get(ctx context.Context, path string, params url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return c.httpClient.Get(ctx, path, params, opts...)
}

// Post implements xinca.Connection.Post.
func (c *Client) Post(ctx context.Context, path string, params url.Values, body url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return c.httpClient.Post(ctx, path, params, body, opts...)
}

// Put implements xinca.Connection.Put.
func (c *Client) Put(ctx context.Context, path string, params url.Values, body url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return c.httpClient.Put(ctx, path, params, body, opts...)
}

// Delete implements xinca.Connection.Delete.
func (c *Client) Delete(ctx context.Context, path string, opts ...xinca.CallOptions) error {
	return c.httpClient.Delete(ctx, path, opts...)
}

// Resource client accessors

// Apps implements xinca.Client.Apps.
func (c *Client) Apps() xinca.AppsClient {
	return c.apps
}

// DEP implements xinca.Client.DEP.
func (c *Client) DEP() xinca.DEPClient {
	return c.dep
}

// Devices implements xinca.Client.Devices.
func (c *Client) Devices() xinca.DevicesClient {
	return c.devices
}

// Profiles implements xinca.Client.Profiles.
func (c *Client) Profiles() xinca.ProfilesClient {
	return c.profiles
}

// Users implements xinca.Client.Users.
func (c *Client) Users() xinca.UsersClient {
	return c.users
}

// Groups implements xinca.Client.Groups.
func (c *Client) Groups() xinca.GroupsClient {
	return c.groups
}

// IBeacons implements xinca.Client.IBeacons.
func (c *Client) IBeacons() xinca.IBeaconsClient {
	return c.iBeacons
}
