// Package http is the transport half of a Xinca connection: it builds every
// request, sends it through the session and classifies the response.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fivetwenty-io/xinca/internal/constants"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

const tracerName = "github.com/fivetwenty-io/xinca"

// Request is a request relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    url.Values
	Headers map[string]string
}

// Client dispatches requests to a single Xinca server.
type Client struct {
	baseURL      string
	session      xinca.Session
	timeout      time.Duration
	logger       xinca.Logger
	debug        bool
	interceptors *xinca.InterceptorChain
	tracer       trace.Tracer
}

// NewClient creates a client for baseURL that sends through session.
func NewClient(baseURL string, session xinca.Session, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
		session: session,
		timeout: constants.DefaultHTTPTimeout,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the server URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and classifies the response. On a classified failure both the
// response and the error are returned. Transport failures, including
// timeouts, are returned as-is with a nil response.
func (c *Client) Do(ctx context.Context, req *Request) (*xinca.Response, error) {
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, "xinca.http.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("xinca.path", req.Path),
			attribute.String("xinca.request_id", requestID),
		),
	)
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, view, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, view)
		if err != nil {
			return nil, err
		}

		httpReq.Header = view.Headers
	}

	c.logRequest(requestID, httpReq)

	resp, err := c.send(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logError(requestID, httpReq, err)
		_ = c.afterResponse(ctx, view, nil, err)

		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logResponse(requestID, httpReq, resp)

	classified := classify(resp)
	if classified != nil {
		span.SetStatus(codes.Error, classified.Error())
	}

	interceptErr := c.afterResponse(ctx, view, resp, classified)
	if classified == nil && interceptErr != nil {
		return resp, interceptErr
	}

	return resp, classified
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, params url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return c.Do(ctx, newRequest(http.MethodGet, path, params, nil, opts))
}

// Post sends a POST request with a form-encoded body.
func (c *Client) Post(ctx context.Context, path string, params url.Values, body url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return c.Do(ctx, newRequest(http.MethodPost, path, params, formBody(body), opts))
}

// Put sends a PUT request with a form-encoded body.
func (c *Client) Put(ctx context.Context, path string, params url.Values, body url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return c.Do(ctx, newRequest(http.MethodPut, path, params, formBody(body), opts))
}

// Delete sends a DELETE request. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string, opts ...xinca.CallOptions) error {
	_, err := c.Do(ctx, newRequest(http.MethodDelete, path, nil, nil, opts))

	return err
}

func newRequest(method, path string, params url.Values, body url.Values, opts []xinca.CallOptions) *Request {
	merged := xinca.MergeCallOptions(opts...)
	if merged.Path != "" {
		path = merged.Path
	}

	query := make(url.Values, len(params)+len(merged.Query))
	for key, values := range params {
		query[key] = append(query[key], values...)
	}

	for key, values := range merged.Query {
		query[key] = append(query[key], values...)
	}

	return &Request{
		Method:  method,
		Path:    path,
		Query:   query,
		Body:    body,
		Headers: merged.Headers,
	}
}

// formBody makes writes always carry a (possibly empty) form body.
func formBody(body url.Values) url.Values {
	if body == nil {
		return url.Values{}
	}

	return body
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, *xinca.Request, error) {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}

		target += separator + req.Query.Encode()
	}

	var payload []byte

	var body io.Reader
	if req.Body != nil {
		payload = []byte(req.Body.Encode())
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeForm)
	httpReq.Header.Set(constants.HeaderUserAgent, constants.UserAgent)
	httpReq.Header.Set(constants.HeaderProtocolVersion, constants.ProtocolVersion)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	view := &xinca.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Query:   req.Query,
		Body:    payload,
	}

	return httpReq, view, nil
}

func (c *Client) send(httpReq *http.Request) (*xinca.Response, error) {
	resp, err := c.session.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &xinca.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Reason:     reasonPhrase(resp.Status, resp.StatusCode),
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (c *Client) afterResponse(ctx context.Context, view *xinca.Request, resp *xinca.Response, err error) error {
	if c.interceptors == nil {
		return nil
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, view, resp, err)
}

// reasonPhrase strips the numeric code from a status line.
func reasonPhrase(status string, code int) string {
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
}

func (c *Client) logRequest(requestID string, req *http.Request) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.Redacted(),
	})
}

func (c *Client) logResponse(requestID string, req *http.Request, resp *xinca.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"request_id":  requestID,
		"method":      req.Method,
		"url":         req.URL.Redacted(),
		"status_code": resp.StatusCode,
		"bytes":       len(resp.Body),
	})
}

func (c *Client) logError(requestID string, req *http.Request, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP Request Failed", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.Redacted(),
		"error":      err.Error(),
	})
}
