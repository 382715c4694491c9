package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates the edicom-api CLI. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "edicom-api",
		Short:        "Credential auth service",
		Version:      version,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.Flags().Bool(migrateFlag, false, "apply pending migrations before serving")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
