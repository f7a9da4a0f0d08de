// Package migrations embeds the goose SQL migrations so the server binary,
// cmd/migrate and the repository tests share one source of truth.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
