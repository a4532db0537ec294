// Package repository handles all interactions with the database.
//
// Every method is a one-to-one binding of ordered parameters onto a single
// stored routine; there is no SQL against the tables here and no
// multi-statement transaction. Result sets come back as database.Rows and
// are forwarded to clients verbatim.
package repository
