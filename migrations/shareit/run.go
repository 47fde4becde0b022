// Package shareit embeds the schema migrations for the rental backend.
package shareit

import "embed"

// FS holds the goose migration files.
//
//go:embed *.sql
var FS embed.FS
