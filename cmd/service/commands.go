package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio-api",
		Short:        "Portfolio backend API",
		Long:         "Portfolio backend API. 不帶子指令時等同 serve。",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Apply pending migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	})
	root.AddCommand(newMigrateCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	var dbURL string

	resolve := func() (string, error) {
		if dbURL != "" {
			return dbURL, nil
		}
		return databaseURL()
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Run database migrations.

Subcommands:
  up      - Create missing tables
  down    - Drop every table (destructive)`,
	}
	migrateCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (default $DATABASE_URL)")

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Create missing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := resolve()
			if err != nil {
				return err
			}
			return migrateUp(url)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Drop every table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := resolve()
			if err != nil {
				return err
			}
			return migrateDown(url)
		},
	})
	return migrateCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return serve(cfg)
}
