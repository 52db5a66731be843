package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the stock and uniform record tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Runs AutoMigrate for the stock_records, uniform_records and issued_items tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, st, err := openStore()
		if err != nil {
			return err
		}
		defer l.Sync()

		l.Info("Migrating schema", zap.String("driver", cfg.Database.Driver))
		if err := st.Migrate(cmd.Context()); err != nil {
			return err
		}
		l.Info("Schema is up to date")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
