// Package migrations embeds the schema for the local credential store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
