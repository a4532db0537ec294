// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as CORS,
// request logging, request correlation, panic recovery, tracing, and the
// global error handler.
package middleware
