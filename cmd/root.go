package cmd

import (
	"fmt"

	dotenv "github.com/dsh2dsh/expx-dotenv"
	"github.com/spf13/cobra"

	"github.com/dsh2dsh/gurufocus/cmd/api"
	"github.com/dsh2dsh/gurufocus/cmd/db"
)

var rootCmd = cobra.Command{
	Use:   "gurufocus",
	Short: "Fetch stock data from GuruFocus API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvs()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(&api.Cmd)
	rootCmd.AddCommand(&db.Cmd)
}

// SetSchemaSQL passes db/schema.sql, embedded by main.go, to "db init".
func SetSchemaSQL(schema string) {
	db.SchemaSQL = schema
}

func Execute(version string) {
	rootCmd.Version = version
	cobra.CheckErr(rootCmd.Execute())
}

func loadEnvs() error {
	if err := dotenv.New().WithDepth(1).Load(); err != nil {
		return fmt.Errorf("load gurufocus envs: %w", err)
	}
	return nil
}
