// Package cmd implements the budgetwise CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"budgetwise/internal/config"
	"budgetwise/internal/forecast"
	"budgetwise/internal/ledger"
	"budgetwise/internal/log"
	"budgetwise/internal/model"
	"budgetwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagFile        string
	flagHorizon     int
	flagModel       string
	flagIncome      float64
	flagSavings     float64
	flagDateCol     string
	flagAmountCol   string
	flagCategoryCol string
	flagQuiet       bool
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "budgetwise",
	Short: "Expense forecasting and budget planning CLI",
	Long:  "Ingest an expense ledger, forecast future spending, and derive a per-category budget against your income and savings target.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal: runSummary reaches
	// settings, which reads rootCmd's flags.
	rootCmd.RunE = runSummary

	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Ledger CSV path")
	rootCmd.PersistentFlags().IntVarP(&flagHorizon, "horizon", "n", 90, "Forecast horizon in days (30-365)")
	rootCmd.PersistentFlags().StringVarP(&flagModel, "model", "m", "seasonal", "Forecast model (seasonal|forest|boost)")
	rootCmd.PersistentFlags().Float64Var(&flagIncome, "income", 5000, "Monthly income")
	rootCmd.PersistentFlags().Float64Var(&flagSavings, "savings", 0.2, "Savings target as a fraction of income (0-0.8)")
	rootCmd.PersistentFlags().StringVar(&flagDateCol, "date-column", "", "Ledger date column name")
	rootCmd.PersistentFlags().StringVar(&flagAmountCol, "amount-column", "", "Ledger amount column name")
	rootCmd.PersistentFlags().StringVar(&flagCategoryCol, "category-column", "", "Ledger category column name")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// settings merges config-file defaults with explicit flags (flags win)
// and validates the result.
func settings() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	pf := rootCmd.PersistentFlags()
	if pf.Changed("horizon") {
		cfg.Forecast.HorizonDays = flagHorizon
	}
	if pf.Changed("model") {
		cfg.Forecast.Model = flagModel
	}
	if pf.Changed("income") {
		cfg.Budget.MonthlyIncome = flagIncome
	}
	if pf.Changed("savings") {
		cfg.Budget.SavingsTargetPct = flagSavings
	}
	if pf.Changed("date-column") {
		cfg.Ledger.DateColumn = flagDateCol
	}
	if pf.Changed("amount-column") {
		cfg.Ledger.AmountColumn = flagAmountCol
	}
	if pf.Changed("category-column") {
		cfg.Ledger.CategoryColumn = flagCategoryCol
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ledgerData holds the shared loading output used by all data commands.
type ledgerData struct {
	Load              *ledger.LoadResult
	Records           []model.LedgerRecord // categorizable records only
	Series            []model.DailyPoint
	DroppedCategories int
}

// loadLedger is the shared data loading path: read, normalize, gate out
// uncategorizable records, aggregate the daily series.
func loadLedger(cfg config.Config) (*ledgerData, error) {
	if flagFile == "" {
		return nil, errors.New("no ledger file: pass --file <path.csv>")
	}

	opts := ledger.Options{
		DateColumn:     cfg.Ledger.DateColumn,
		AmountColumn:   cfg.Ledger.AmountColumn,
		CategoryColumn: cfg.Ledger.CategoryColumn,
	}
	if len(cfg.Ledger.Synonyms) > 0 {
		opts.Synonyms = ledger.MergedSynonyms(cfg.Ledger.Synonyms)
	}

	result, err := ledger.ReadFile(flagFile, opts)
	if err != nil {
		return nil, err
	}

	logger := log.New("ledger", flagVerbose)
	logger.Debug("ledger loaded",
		"rows", result.TotalRows,
		"dropped_dates", result.DroppedDates,
		"zero_amounts", result.ZeroAmounts,
		"has_category", result.HasCategory,
	)

	records, droppedCats := ledger.DropUncategorizable(result.Records)
	if !flagQuiet && result.DroppedDates+droppedCats > 0 {
		fmt.Fprintf(os.Stderr, "  Skipped %d rows (%d bad dates, %d missing categories)\n",
			result.DroppedDates+droppedCats, result.DroppedDates, droppedCats)
	}

	return &ledgerData{
		Load:              result,
		Records:           records,
		Series:            pipeline.Aggregate(records),
		DroppedCategories: droppedCats,
	}, nil
}

// runForecastModel guards backend preconditions and runs the configured
// model over the series.
func runForecastModel(cfg config.Config, series []model.DailyPoint) ([]model.ForecastRow, error) {
	if len(series) == 0 {
		return nil, errors.New("ledger has no usable rows")
	}
	if len(series) < 2 && cfg.Forecast.Model != forecast.ModelSeasonal {
		return nil, fmt.Errorf("model %q needs at least 2 distinct dates, ledger has %d",
			cfg.Forecast.Model, len(series))
	}

	f, err := forecast.New(cfg.Forecast.Model)
	if err != nil {
		return nil, err
	}
	return f.Forecast(series, cfg.Forecast.HorizonDays)
}
