package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/casasbr/seedgen/database/seeders"
	"github.com/casasbr/seedgen/pkg/database"
	"github.com/casasbr/seedgen/pkg/migration"
	"github.com/casasbr/seedgen/pkg/storage"
)

// bootDB boots the app and opens the database connection.
func bootDB() error {
	if err := boot(); err != nil {
		return err
	}
	return database.Connect()
}

// seedgen migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close(database.DB)
		return track("migrate", func() error {
			fmt.Fprintln(cmd.OutOrStdout(), "Running migrations…")
			_, err := migration.New(database.DB).WithOutput(cmd.OutOrStdout()).Run()
			return err
		})
	},
}

// seedgen migrate:rollback
var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Rollback the last batch of migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close(database.DB)
		return track("migrate:rollback", func() error {
			fmt.Fprintln(cmd.OutOrStdout(), "Rolling back last batch…")
			_, err := migration.New(database.DB).WithOutput(cmd.OutOrStdout()).Rollback()
			return err
		})
	},
}

// seedgen migrate:status
var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close(database.DB)
		return track("migrate:status", func() error {
			_, err := migration.New(database.DB).WithOutput(cmd.OutOrStdout()).Status()
			return err
		})
	},
}

var (
	seedFile  string
	seedForce bool
)

// seedgen seed [name]
var seedCmd = &cobra.Command{
	Use:   "seed [seeder]",
	Short: "Load the seed file into the database",
	Long:  "Runs every registered seeder, or only the named one. The properties seeder inserts the seed file in transactions of 50 rows.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		defer database.Close(database.DB)
		return track("seed", func() error {
			opts := seeders.Options{
				Disk:  storage.Default(),
				File:  seedFilePath(seedFile),
				Force: seedForce,
				Out:   cmd.OutOrStdout(),
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Running seeders…")
			if len(args) == 1 {
				return seeders.Run(database.DB, args[0], opts)
			}
			return seeders.RunAll(database.DB, opts)
		})
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed file path on the storage disk (env SEED_FILE)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Insert even when the properties table already has rows")
}
