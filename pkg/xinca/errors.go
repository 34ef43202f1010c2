package xinca

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	// ErrAuthentication means the credentials are invalid or missing (401).
	ErrAuthentication = errors.New("authentication failed")
	// ErrAuthorization means the credentials lack the privilege for the operation (403).
	ErrAuthorization = errors.New("not authorized")
	// ErrServer means the server failed to process the request (5xx or unclassified status).
	ErrServer = errors.New("server error")
	// ErrUnexpectedRedirect means the server answered 302, which this API never does legitimately.
	ErrUnexpectedRedirect = errors.New("unexpected redirect")
)

// Configuration errors.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrInvalidConfig       = errors.New("invalid client configuration")
	ErrCredentialsRequired = errors.New("a session or a username and password must be provided")
	ErrNilSession          = errors.New("session is a nil pointer")
	ErrSkipTLSOnlyInDev    = errors.New("skipping TLS verification is only allowed in development environments")
)

// Error is the base error for failures classified by the client.
type Error struct {
	// Kind is one of ErrAuthentication, ErrAuthorization, ErrServer or ErrUnexpectedRedirect.
	Kind       error
	StatusCode int
	// Message is the human-readable message extracted from the response.
	Message  string
	Response *Response
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("xinca: %s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
}

// Unwrap returns the error kind so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// StatusError is returned for 4xx responses other than 401 and 403. It does
// not unwrap to any error kind.
type StatusError struct {
	StatusCode int
	Message    string
	Body       []byte
	Response   *Response
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("xinca: unexpected status %d: %s", e.StatusCode, e.Message)
}

// IsAuthentication reports whether err is a 401 classification.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsAuthorization reports whether err is a 403 classification.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrAuthorization)
}

// IsServerError reports whether err is a server-side failure.
func IsServerError(err error) bool {
	return errors.Is(err, ErrServer)
}

// IsUnexpectedRedirect reports whether the server answered 302.
func IsUnexpectedRedirect(err error) bool {
	return errors.Is(err, ErrUnexpectedRedirect)
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the HTTP status carried by err, or 0 if it carries none.
func StatusCode(err error) int {
	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}
