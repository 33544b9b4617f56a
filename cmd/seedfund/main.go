package main

import (
	"os"

	"github.com/spf13/cobra"

	"seedfund/internal/interfaces/cli/migrate"
	"seedfund/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seedfund",
		Short: "SeedFund - crowdfunding platform backend",
		Long:  `SeedFund is the API server for the SeedFund crowdfunding platform, with account lifecycle, project funding, and content services.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
