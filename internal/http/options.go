package http

import (
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger xinca.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *xinca.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithTracerProvider sets the provider of the request tracer.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}
