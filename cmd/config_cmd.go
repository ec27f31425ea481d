package cmd

import (
	"fmt"

	"github.com/theirongolddev/snowplan/internal/config"
	"github.com/theirongolddev/snowplan/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Println()

	fmt.Println("  [Simulation]")
	fmt.Printf("    Extra monthly: %.2f\n", cfg.Simulation.ExtraMonthly)
	fmt.Printf("    Max months:    %d\n", cfg.Simulation.MaxMonths)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = store.DefaultPath()
	}
	fmt.Printf("  Portfolio database: %s\n", dbPath)
	fmt.Println()

	return nil
}
