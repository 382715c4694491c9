package main

import (
	"github.com/patrykJ113/edicom-api/config"
	"github.com/patrykJ113/edicom-api/db"
	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.MustLoad()

			cmd.Println("Running migrations...")
			if err := db.Migrate(cmd.Context(), cfg.DBURL); err != nil {
				return err
			}

			cmd.Println("Migrations completed successfully")
			return nil
		},
	}
}
