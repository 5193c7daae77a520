//go:generate mockery
package main

import (
	_ "embed"

	"github.com/dsh2dsh/gurufocus/cmd"
)

// Set by -ldflags "-X main.version=..."
var version = "dev"

//go:embed db/schema.sql
var schemaSQL string

func init() {
	cmd.SetSchemaSQL(schemaSQL)
}

func main() {
	cmd.Execute(version)
}
