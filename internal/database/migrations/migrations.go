package migrations

import "embed"

// Migrations содержит SQL-миграции PostgreSQL, встроенные в бинарник.
//
//go:embed *.sql
var Migrations embed.FS
