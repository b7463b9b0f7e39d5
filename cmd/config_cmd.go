package cmd

import (
	"fmt"

	"budgetwise/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		if config.Exists() {
			return fmt.Errorf("config already exists at %s", config.Path())
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("  Wrote defaults to %s\n", config.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Forecast]")
	fmt.Printf("    Horizon days: %d\n", cfg.Forecast.HorizonDays)
	fmt.Printf("    Model:        %s\n", cfg.Forecast.Model)
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Monthly income:  %.2f\n", cfg.Budget.MonthlyIncome)
	fmt.Printf("    Savings target:  %.0f%%\n", cfg.Budget.SavingsTargetPct*100)
	fmt.Println()

	fmt.Println("  [Ledger]")
	if cfg.Ledger.DateColumn != "" || cfg.Ledger.AmountColumn != "" || cfg.Ledger.CategoryColumn != "" {
		fmt.Printf("    Date column:     %s\n", orDefault(cfg.Ledger.DateColumn, "date"))
		fmt.Printf("    Amount column:   %s\n", orDefault(cfg.Ledger.AmountColumn, "amount"))
		fmt.Printf("    Category column: %s\n", orDefault(cfg.Ledger.CategoryColumn, "category"))
	} else {
		fmt.Println("    Columns: date, amount, category (defaults)")
	}
	if len(cfg.Ledger.Synonyms) > 0 {
		fmt.Printf("    Synonym overrides: %d\n", len(cfg.Ledger.Synonyms))
	}

	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
