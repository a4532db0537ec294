// Package errs define custom error types and utilities.
//
// Every externally reachable fault in the gateway is eventually rendered
// as an HTTPError by the global error handler, so clients always receive
// a consistent JSON error shape regardless of where the fault originated.
package errs
