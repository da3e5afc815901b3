// Package migrations embeds the postgres schema migrations of the grid
package migrations

import "embed"

// FS holds the numbered up and down migration files
//
//go:embed *.sql
var FS embed.FS
