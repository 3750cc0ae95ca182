// Package http implements the HTTP transport layer of the guide server.
//
// It exposes route wiring, request handlers, and middleware used by the
// owner-facing REST API and the unauthenticated guest pages. Cross-cutting
// concerns such as authentication, request tracing, access logging, and
// response compression are handled in this package before requests are
// delegated to the service layer.
package http
