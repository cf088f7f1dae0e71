// Package middleware groups the Fiber middlewares used by the HTTP server.
//
// # Subpackages
//
//   - auth: API key authentication. Every request must carry the configured
//     key in the X-API-Key header; an empty configured key disables the check.
//   - rayid: assigns a unique ray ID to each request so log lines across
//     handlers and services can be correlated.
package middleware
