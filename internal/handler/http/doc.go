// Package http implements the HTTP transport layer of the users API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, security
// headers, rate limiting and response compression are handled in this
// package before requests are delegated to the service layer.
//
// Every /users response is a JSON envelope {"success": bool, "data": any}.
package http
