package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Server defaults.
const (
	// DefaultServer is the production Xinca API endpoint.
	DefaultServer = "https://apiv6.xincamdm.com"

	// DefaultHTTPTimeout is the default connect and read timeout for a request.
	DefaultHTTPTimeout = 30 * time.Second
)

// Fixed request headers.
const (
	// HeaderContentType is the Content-Type header name.
	HeaderContentType = "Content-Type"

	// HeaderUserAgent is the User-Agent header name.
	HeaderUserAgent = "User-Agent"

	// HeaderProtocolVersion is the header carrying the server protocol version.
	HeaderProtocolVersion = "X-Server-Protocol-Version"

	// ContentTypeForm is sent on every request, including reads.
	ContentTypeForm = "application/x-www-form-urlencoded; charset=utf-8"

	// UserAgent identifies this client to the server.
	UserAgent = "Xinca and Zuludesk API Wrapper/1.0"

	// ProtocolVersion is the value of X-Server-Protocol-Version.
	ProtocolVersion = "3"
)

// Resource base paths.
const (
	PathApps     = "/apps"
	PathDEP      = "/dep"
	PathDevices  = "/devices"
	PathProfiles = "/profiles"
	PathUsers    = "/users"
	PathGroups   = "/user/groups"
	PathIBeacons = "/ibeacons"
)

// Environment.
const (
	// DevModeEnv enables development-only settings such as skipping TLS verification.
	DevModeEnv = "XINCA_DEV_MODE"

	// EnvPrefix is the viper environment prefix for the CLI.
	EnvPrefix = "XINCA"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Validation and limits.
const (
	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2

	// StringTruncationLimit caps cell width in table output.
	StringTruncationLimit = 60

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// CRUD operation constants.
const (
	OperationCreate = "create"
	OperationGet    = "get"
	OperationList   = "list"
	OperationUpdate = "update"
	OperationDelete = "delete"
)
