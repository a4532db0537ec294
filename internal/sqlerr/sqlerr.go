// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them into
// user-friendly HTTPErrors (e.g. a unique violation on the person table
// becomes a "PERSON_ALREADY_EXISTS" bad request).
package sqlerr
