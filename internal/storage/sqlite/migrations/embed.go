package migrations

import "embed"

// FS contains embedded SQLite migrations for crafting storage.
//
//go:embed *.sql
var FS embed.FS
