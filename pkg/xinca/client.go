package xinca

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Session sends prepared requests. An *http.Client satisfies it, as does
// any wrapper that authenticates requests before sending them.
type Session interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Creator creates records under a resource's base path.
type Creator interface {
	Create(ctx context.Context, data url.Values, params url.Values, opts ...CallOptions) (Record, error)
}

// Getter reads a single record by ID (serial number, UDID or numeric ID).
type Getter interface {
	Get(ctx context.Context, id string, params url.Values, opts ...CallOptions) (Record, error)
}

// Lister reads every record under a resource's base path.
type Lister interface {
	List(ctx context.Context, params url.Values, opts ...CallOptions) (RecordSet, error)
}

// Updater updates a single record by ID.
type Updater interface {
	Update(ctx context.Context, id string, data url.Values, params url.Values, opts ...CallOptions) (Record, error)
}

// Deleter deletes a single record by ID.
type Deleter interface {
	Delete(ctx context.Context, id string, opts ...CallOptions) error
}

// Resource is implemented by every resource client.
type Resource interface {
	Path() string
}

// Reader is the read-only capability set.
type Reader interface {
	Getter
	Lister
}

// CRUD is the full capability set.
type CRUD interface {
	Creator
	Reader
	Updater
	Deleter
}

// AppsClient reads applications.
type AppsClient interface {
	Resource
	Reader
}

// DEPClient reads and updates enrollment-program records.
type DEPClient interface {
	Resource
	Reader
	Updater
}

// DevicesClient reads and deletes devices.
type DevicesClient interface {
	Resource
	Reader
	Deleter
}

// ProfilesClient reads configuration profiles.
type ProfilesClient interface {
	Resource
	Reader
}

// UsersClient manages users.
type UsersClient interface {
	Resource
	CRUD
}

// GroupsClient manages user groups.
type GroupsClient interface {
	Resource
	CRUD
}

// IBeaconsClient manages proximity beacons.
type IBeaconsClient interface {
	Resource
	CRUD
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Apps() AppsClient
	DEP() DEPClient
	Devices() DevicesClient
	Profiles() ProfilesClient
	Users() UsersClient
	Groups() GroupsClient
	IBeacons() IBeaconsClient
}

// Connection is the verb-level surface every resource delegates to. Paths are
// relative to the configured server.
type Connection interface {
	Get(ctx context.Context, path string, params url.Values, opts ...CallOptions) (*Response, error)
	Post(ctx context.Context, path string, params url.Values, body url.Values, opts ...CallOptions) (*Response, error)
	Put(ctx context.Context, path string, params url.Values, body url.Values, opts ...CallOptions) (*Response, error)
	Delete(ctx context.Context, path string, opts ...CallOptions) error
}

// Client is a connection to a Xinca MDM server with its bound resources.
type Client interface {
	ResourceClients
	Connection

	// Server returns the resolved base URL.
	Server() string
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// Provide either Session, an already authenticated transport, or Username
// and Password, which are sent as HTTP Basic credentials on every request.
// Construction fails with ErrCredentialsRequired when neither is given.
//
// # Timeouts and TLS
//
// Timeout bounds each request from connect to the last byte of the body.
// Certificates are verified unless InsecureSkipVerify is set, which is only
// honored when XINCA_DEV_MODE is "true" or "1".
type Config struct {
	// Server is the base URL. Defaults to https://apiv6.xincamdm.com. A
	// trailing slash is trimmed and "https://" is added if no scheme is present.
	Server string

	// Username for HTTP Basic authentication.
	Username string
	// Password for HTTP Basic authentication.
	Password string
	// Session overrides the default session. Username and Password are
	// ignored when it is set. A nil pointer such as (*http.Client)(nil) is rejected.
	Session Session

	// Timeout per request. Defaults to 30s.
	Timeout time.Duration

	// InsecureSkipVerify disables certificate verification on the default session.
	InsecureSkipVerify bool

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// Interceptors run around every request.
	Interceptors *InterceptorChain
	// TracerProvider supplies the tracer for request spans. Defaults to the
	// global otel provider.
	TracerProvider trace.TracerProvider
}
