package migrations

import "embed"

// Dir is the root of FS that goose reads migrations from.
const Dir = "."

//go:embed *.sql
var FS embed.FS
