package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"archsmith/internal/deploy"
	"archsmith/internal/detail"
	"archsmith/internal/llm"
	"archsmith/internal/types"
)

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the available detail tiers",
		RunE: func(c *cobra.Command, args []string) error {
			for _, tier := range detail.Tiers() {
				cfg, err := detail.Resolve(tier)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n  %s\n", cfg.Tier, cfg.Description)
				fmt.Printf("  tables: %d, endpoints: %d, components: %d\n",
					cfg.Database.MaxTables, cfg.API.MaxEndpoints, cfg.Frontend.MaxComponents)
			}
			return nil
		},
	}
}

func platformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the supported deployment platforms",
		RunE: func(c *cobra.Command, args []string) error {
			for _, p := range types.Platforms() {
				fmt.Printf("%-14s %s\n", p, deploy.DisplayName(p))
				if rec, ok := deploy.Recommended(p); ok {
					fmt.Printf("  default stack: %s + %s\n", rec.Compute, rec.Database)
				}
			}
			return nil
		},
	}
}

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the supported LLM providers and their models",
		RunE: func(c *cobra.Command, args []string) error {
			for _, id := range llm.Providers() {
				spec, err := llm.Provider(id)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%s)\n  key: %s, default model: %s\n",
					spec.DisplayName, spec.ID, spec.APIKeyEnv, spec.DefaultModel)
				names := make([]string, 0, len(spec.Models))
				for name := range spec.Models {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					m := spec.Models[name]
					fmt.Printf("  - %s ($%.2f in / $%.2f out per 1M tokens)\n",
						m.Name, m.InputCostPer1M, m.OutputCostPer1M)
				}
			}
			return nil
		},
	}
}
