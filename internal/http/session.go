package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// Session is the default transport: a retryablehttp client with retries
// switched off, so each call is attempted exactly once, and redirects left
// to the caller so a 302 can be classified.
type Session struct {
	client *retryablehttp.Client
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionLogger routes the transport's own logs to logger. Debug and info
// lines are only forwarded when debug is set.
func WithSessionLogger(logger xinca.Logger, debug bool) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.client.Logger = &leveledLogger{logger: logger, debug: debug}
		}
	}
}

// WithInsecureSkipVerify disables certificate verification.
func WithInsecureSkipVerify() SessionOption {
	return func(s *Session) {
		transport, ok := s.client.HTTPClient.Transport.(*http.Transport)
		if !ok {
			return
		}

		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- gated by XINCA_DEV_MODE in the caller
	}
}

// NewSession creates the default session.
func NewSession(opts ...SessionOption) *Session {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.CheckRetry = neverRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil
	client.HTTPClient = &http.Client{
		Transport: cleanhttp.DefaultPooledTransport(),
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	session := &Session{client: client}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Do implements xinca.Session.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	retryReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, fmt.Errorf("preparing request: %w", err)
	}

	return s.client.Do(retryReq)
}

func neverRetry(context.Context, *http.Response, error) (bool, error) {
	return false, nil
}

// leveledLogger adapts xinca.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger xinca.Logger
	debug  bool
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	if l.debug {
		l.logger.Info(msg, fields(keysAndValues))
	}
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	if l.debug {
		l.logger.Debug(msg, fields(keysAndValues))
	}
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}
