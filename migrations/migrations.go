// Package migrations embeds the goose SQL migrations that provision the
// roster schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
