package migrations

import "embed"

// FS SQL-миграции схемы, применяются через goose
//
//go:embed *.sql
var FS embed.FS
