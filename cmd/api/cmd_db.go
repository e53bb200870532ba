package main

import (
	"golden-thread/internal/database"

	"github.com/spf13/cobra"
)

var (
	migrateDown   bool
	migrateStatus bool
)

// api migrate [--down | --status]
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations, roll back one, or show status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()
		defer a.db.Close()

		switch {
		case migrateStatus:
			return database.GetMigrationStatus(a.db.DB(), a.log)
		case migrateDown:
			return database.RollbackMigration(a.db.DB(), a.log)
		default:
			return database.RunMigrations(a.db.DB(), a.log)
		}
	},
}

// api seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the admin account and demo catalog into empty tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()
		defer a.db.Close()

		return database.Seed(cmd.Context(), a.db.DB(), a.cfg.Seed, a.log)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "roll back the most recent migration")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "print migration status")
	migrateCmd.MarkFlagsMutuallyExclusive("down", "status")
}
