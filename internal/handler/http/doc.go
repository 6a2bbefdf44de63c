// Package http implements the REST transport of the contact directory.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Request tracing, access logging, response compression and token
// authorization are handled here before requests reach the service layer.
// Every response body is a models.Response envelope.
package http
