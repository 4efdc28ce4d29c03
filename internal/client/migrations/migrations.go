// Package migrations embeds the goose migrations for the local client
// database (persisted token and chat transcript).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
