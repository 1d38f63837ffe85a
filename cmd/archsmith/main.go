package main

import (
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "archsmith",
		Short:        "Turn a business idea into a full technical blueprint",
		Long:         "archsmith runs a five stage architecture pipeline (requirements, database, API, frontend, deployment) against an LLM provider and writes the resulting blueprint as markdown, JSON, and Mermaid diagrams.",
		SilenceUsage: true,
	}
	cmd.AddCommand(generateCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(tiersCmd())
	cmd.AddCommand(platformsCmd())
	cmd.AddCommand(providersCmd())
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
