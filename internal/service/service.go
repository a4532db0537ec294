// Package service contains the business logic.
//
// It sits between the handler and repository layers. In this gateway that
// amounts to two things: credential verification/creation (the only
// non-passthrough behavior in the system) and the shared search capability
// exposed under several route groups.
package service
