package migrations

import "embed"

// FS содержит SQL миграции, вшитые в бинарник (goose читает их через SetBaseFS)
//
//go:embed *.sql
var FS embed.FS
