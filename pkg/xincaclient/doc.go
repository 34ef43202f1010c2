// Package xincaclient provides the primary entry point for constructing a
// Xinca MDM API client that implements the xinca.Client interface.
//
// It layers configuration validation, the default HTTP session and HTTP Basic
// authentication on top of the resource interfaces and types defined in the
// xinca package. Most applications import xincaclient to build a client, then
// use the returned xinca.Client to reach the resource clients, for example
// Devices(), Users() or IBeacons().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/xinca/pkg/xinca"
//	  "github.com/fivetwenty-io/xinca/pkg/xincaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Username and password against the default server.
//	  cli, err := xincaclient.NewWithPassword("", "api-user", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or the full configuration.
//	  cli, err = xincaclient.New(&xinca.Config{
//	    Server:   "https://apiv6.xincamdm.com",
//	    Username: "api-user",
//	    Password: "api-key",
//	    Timeout:  10 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  devices, err := cli.Devices().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = devices
//	}
//
// # Bring your own session
//
// Any value with a Do(*http.Request) (*http.Response, error) method, including
// *http.Client, can be used as the session. It is expected to authenticate the
// requests itself; Username and Password are then ignored.
//
// # TLS and development mode
//
// For local development, you can set Config.InsecureSkipVerify=true. This is
// gated by the environment variable XINCA_DEV_MODE to avoid accidental insecure
// usage in production environments.
package xincaclient
