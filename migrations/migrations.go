// Package migrations embeds the schema migration files for both supported
// database backends.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
