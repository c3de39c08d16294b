// Package migrations ships the database schema as embedded golang-migrate files.
package migrations

import "embed"

// FS holds the numbered up/down SQL files.
//
//go:embed *.sql
var FS embed.FS
