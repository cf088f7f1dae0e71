// Package server holds the HTTP server configuration.
//
// The seller header is configurable because some deployments sit behind a
// gateway that already injects a tenant header under its own name.
package server
