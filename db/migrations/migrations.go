// Package migrations embeds the schema of the postgres record store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects: 1 creates the
// popup_records key/value table.
const Version uint = 1
