// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the validation
// package, and calls the repository or service layer. Handlers never write
// error responses themselves; they return errors for the global error
// handler to render.
package handler
