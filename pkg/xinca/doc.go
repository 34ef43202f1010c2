// Package xinca provides types, interfaces, and errors for working with the
// Xinca (Zuludesk) MDM HTTP API.
//
// # Overview
//
// The server exposes a handful of resources (apps, enrollment programs,
// devices, profiles, users, groups and iBeacons). Each supports a subset of
// create, get, list, update and delete. The resource interfaces in this
// package encode that subset: DevicesClient has Get, List and Delete but no
// Create, so an unsupported call does not compile.
//
// A concrete implementation is provided by the xincaclient package:
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/xinca/pkg/xincaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := xincaclient.NewWithPassword("", "admin", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  devices, err := cli.Devices().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = devices
//	}
//
// Records are returned as untyped maps (Record, RecordSet); the client does
// not impose a schema beyond JSON.
//
// # Call options
//
// Every resource call accepts CallOptions to override the computed path or
// add headers and query values for a single call.
//
// # Errors
//
// Failed responses are classified by status code:
//
//	302        *Error wrapping ErrUnexpectedRedirect
//	401        *Error wrapping ErrAuthentication
//	403        *Error wrapping ErrAuthorization
//	other 4xx  *StatusError (not an *Error; inspect StatusCode)
//	5xx        *Error wrapping ErrServer
//
// Transport failures such as timeouts are returned unchanged.
package xinca
