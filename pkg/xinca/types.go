package xinca

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
)

// Record is a single server-side entity decoded from JSON.
type Record map[string]any

// RecordSet is a collection of records as returned by a list call.
type RecordSet []Record

// Response is a completed HTTP exchange with the body fully read.
type Response struct {
	StatusCode int
	// Status is the full status line, e.g. "404 Not Found".
	Status string
	// Reason is the reason phrase of the status line, e.g. "Not Found".
	Reason string
	Header http.Header
	Body   []byte
}

// Decode unmarshals the body into v. Numbers are kept as json.Number
// when v is an untyped container.
func (r *Response) Decode(v any) error {
	decoder := json.NewDecoder(bytes.NewReader(r.Body))
	decoder.UseNumber()

	err := decoder.Decode(v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Record decodes the body as a single record.
func (r *Response) Record() (Record, error) {
	var record Record

	err := r.Decode(&record)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// RecordSet decodes the body as a list of records.
func (r *Response) RecordSet() (RecordSet, error) {
	var records RecordSet

	err := r.Decode(&records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// CallOptions carries per-call transport settings.
type CallOptions struct {
	// Path replaces the path computed by the resource when set.
	Path string
	// Headers are added on top of the fixed request headers.
	Headers map[string]string
	// Query values are appended to the request parameters.
	Query url.Values
}

// MergeCallOptions folds opts left to right. A later Path wins; headers and
// query values accumulate.
func MergeCallOptions(opts ...CallOptions) CallOptions {
	var merged CallOptions

	for _, opt := range opts {
		if opt.Path != "" {
			merged.Path = opt.Path
		}

		if len(opt.Headers) > 0 {
			if merged.Headers == nil {
				merged.Headers = make(map[string]string, len(opt.Headers))
			}

			maps.Copy(merged.Headers, opt.Headers)
		}

		for key, values := range opt.Query {
			if merged.Query == nil {
				merged.Query = make(url.Values)
			}

			merged.Query[key] = append(merged.Query[key], values...)
		}
	}

	return merged
}
