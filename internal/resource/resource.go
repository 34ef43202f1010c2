// Package resource holds the capability mixins that resource clients are
// composed from. Each mixin implements one verb against a base path and
// delegates the exchange to a Connection.
package resource

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/xinca/pkg/xinca"
)

// Connection is the transport every mixin delegates to.
type Connection = xinca.Connection

// Base carries the state shared by all mixins of one resource.
type Base struct {
	conn Connection
	path string
}

// NewBase binds a resource rooted at path to conn.
func NewBase(conn Connection, path string) Base {
	return Base{conn: conn, path: path}
}

// Path returns the resource's base path.
func (b Base) Path() string {
	return b.path
}

func (b Base) itemPath(id string) string {
	return b.path + "/" + id
}

// Creator implements xinca.Creator.
type Creator struct{ Base }

// Create posts data to the base path and returns the created record.
func (c Creator) Create(ctx context.Context, data url.Values, params url.Values, opts ...xinca.CallOptions) (xinca.Record, error) {
	resp, err := c.conn.Post(ctx, c.path, params, data, opts...)
	if err != nil {
		return nil, err
	}

	return record(resp, c.path)
}

// Getter implements xinca.Getter.
type Getter struct{ Base }

// Get fetches the record at {base}/{id}.
func (g Getter) Get(ctx context.Context, id string, params url.Values, opts ...xinca.CallOptions) (xinca.Record, error) {
	resp, err := g.conn.Get(ctx, g.itemPath(id), params, opts...)
	if err != nil {
		return nil, err
	}

	return record(resp, g.path)
}

// Lister implements xinca.Lister.
type Lister struct{ Base }

// List fetches every record under the base path.
func (l Lister) List(ctx context.Context, params url.Values, opts ...xinca.CallOptions) (xinca.RecordSet, error) {
	resp, err := l.conn.Get(ctx, l.path, params, opts...)
	if err != nil {
		return nil, err
	}

	records, err := resp.RecordSet()
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", l.path, err)
	}

	return records, nil
}

// Updater implements xinca.Updater.
type Updater struct{ Base }

// Update puts data to {base}/{id} and returns the updated record.
func (u Updater) Update(ctx context.Context, id string, data url.Values, params url.Values, opts ...xinca.CallOptions) (xinca.Record, error) {
	resp, err := u.conn.Put(ctx, u.itemPath(id), params, data, opts...)
	if err != nil {
		return nil, err
	}

	return record(resp, u.path)
}

// Deleter implements xinca.Deleter.
type Deleter struct{ Base }

// Delete removes the record at {base}/{id}. Any response body is ignored.
func (d Deleter) Delete(ctx context.Context, id string, opts ...xinca.CallOptions) error {
	return d.conn.Delete(ctx, d.itemPath(id), opts...)
}

// Read bundles Getter and Lister.
type Read struct {
	Getter
	Lister
}

// NewRead binds the read-only capability set.
func NewRead(conn Connection, path string) Read {
	base := NewBase(conn, path)

	return Read{Getter: Getter{base}, Lister: Lister{base}}
}

// Path returns the resource's base path.
func (r Read) Path() string {
	return r.Getter.Path()
}

// CRUD bundles every capability.
type CRUD struct {
	Creator
	Getter
	Lister
	Updater
	Deleter
}

// NewCRUD binds the full capability set.
func NewCRUD(conn Connection, path string) CRUD {
	base := NewBase(conn, path)

	return CRUD{
		Creator: Creator{base},
		Getter:  Getter{base},
		Lister:  Lister{base},
		Updater: Updater{base},
		Deleter: Deleter{base},
	}
}

// Path returns the resource's base path.
func (c CRUD) Path() string {
	return c.Creator.Path()
}

func record(resp *xinca.Response, path string) (xinca.Record, error) {
	rec, err := resp.Record()
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", path, err)
	}

	return rec, nil
}
