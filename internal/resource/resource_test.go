package resource_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/xinca/internal/resource"
	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// Test static errors.
var (
	ErrTestTransport = errors.New("connection refused")
)

type call struct {
	method string
	path   string
	params url.Values
	body   url.Values
}

// fakeConn records calls and answers with a canned response.
type fakeConn struct {
	calls []call
	body  string
	err   error
}

func (f *fakeConn) respond(method, path string, params, body url.Values, opts []xinca.CallOptions) (*xinca.Response, error) {
	merged := xinca.MergeCallOptions(opts...)
	if merged.Path != "" {
		path = merged.Path
	}

	f.calls = append(f.calls, call{method: method, path: path, params: params, body: body})

	if f.err != nil {
		return nil, f.err
	}

	return &xinca.Response{StatusCode: http.StatusOK, Body: []byte(f.body)}, nil
}

func (f *fakeConn) Get(_ context.Context, path string, params url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return f.respond(http.MethodGet, path, params, nil, opts)
}

func (f *fakeConn) Post(_ context.Context, path string, params, body url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return f.respond(http.MethodPost, path, params, body, opts)
}

func (f *fakeConn) Put(_ context.Context, path string, params, body url.Values, opts ...xinca.CallOptions) (*xinca.Response, error) {
	return f.respond(http.MethodPut, path, params, body, opts)
}

func (f *fakeConn) Delete(_ context.Context, path string, opts ...xinca.CallOptions) error {
	_, err := f.respond(http.MethodDelete, path, nil, nil, opts)

	return err
}

var (
	_ xinca.CRUD   = resource.CRUD{}
	_ xinca.Reader = resource.Read{}
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCRUD_Paths(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name       string
		body       string
		run        func(resource.CRUD) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "create posts to base path",
			body: `{"id":1}`,
			run: func(c resource.CRUD) error {
				_, err := c.Create(ctx, url.Values{"name": {"x"}}, nil)

				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/users",
		},
		{
			name: "get appends id",
			body: `{"id":1}`,
			run: func(c resource.CRUD) error {
				_, err := c.Get(ctx, "u123", nil)

				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/users/u123",
		},
		{
			name: "list uses base path",
			body: `[]`,
			run: func(c resource.CRUD) error {
				_, err := c.List(ctx, nil)

				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/users",
		},
		{
			name: "update puts to id",
			body: `{"id":1}`,
			run: func(c resource.CRUD) error {
				_, err := c.Update(ctx, "u123", url.Values{"name": {"y"}}, nil)

				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/users/u123",
		},
		{
			name: "delete targets id",
			run: func(c resource.CRUD) error {
				return c.Delete(ctx, "u123")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/users/u123",
		},
		{
			name: "get path override replaces computed path",
			body: `{"id":1}`,
			run: func(c resource.CRUD) error {
				_, err := c.Get(ctx, "u123", nil, xinca.CallOptions{Path: "/users/u123/devices"})

				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/users/u123/devices",
		},
		{
			name: "list path override",
			body: `[]`,
			run: func(c resource.CRUD) error {
				_, err := c.List(ctx, nil, xinca.CallOptions{Path: "/users/inactive"})

				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/users/inactive",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			conn := &fakeConn{body: testCase.body}
			crud := resource.NewCRUD(conn, "/users")

			require.NoError(t, testCase.run(crud))
			require.Len(t, conn.calls, 1)
			assert.Equal(t, testCase.wantMethod, conn.calls[0].method)
			assert.Equal(t, testCase.wantPath, conn.calls[0].path)
		})
	}
}

func TestCreator_PassesDataAndParams(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{body: `{"id":42,"username":"alice"}`}
	creator := resource.Creator{Base: resource.NewBase(conn, "/users")}

	record, err := creator.Create(context.Background(),
		url.Values{"username": {"alice"}}, url.Values{"notify": {"1"}})
	require.NoError(t, err)
	assert.Equal(t, "alice", record["username"])

	require.Len(t, conn.calls, 1)
	assert.Equal(t, "alice", conn.calls[0].body.Get("username"))
	assert.Equal(t, "1", conn.calls[0].params.Get("notify"))
}

func TestLister_PreservesShape(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{body: `[{"udid":"a","battery":0.5},{"udid":"b","battery":1}]`}
	read := resource.NewRead(conn, "/devices")

	records, err := read.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0]["udid"])
	assert.Equal(t, "/devices", read.Path())
}

func TestMixins_PropagateErrors(t *testing.T) {
	t.Parallel()

	apiErr := &xinca.Error{Kind: xinca.ErrAuthentication, StatusCode: http.StatusUnauthorized, Message: "denied"}

	t.Run("taxonomy errors unchanged", func(t *testing.T) {
		t.Parallel()

		conn := &fakeConn{err: apiErr}
		crud := resource.NewCRUD(conn, "/ibeacons")

		_, err := crud.Get(context.Background(), "1", nil)
		assert.Same(t, apiErr, err)

		err = crud.Delete(context.Background(), "1")
		assert.Same(t, apiErr, err)
	})

	t.Run("transport errors unchanged", func(t *testing.T) {
		t.Parallel()

		conn := &fakeConn{err: ErrTestTransport}
		read := resource.NewRead(conn, "/apps")

		_, err := read.List(context.Background(), nil)
		assert.Equal(t, ErrTestTransport, err)
	})

	t.Run("decode failures are wrapped", func(t *testing.T) {
		t.Parallel()

		conn := &fakeConn{body: `not json`}
		read := resource.NewRead(conn, "/apps")

		_, err := read.Get(context.Background(), "7", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing /apps response")
	})
}
