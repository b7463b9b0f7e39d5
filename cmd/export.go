package cmd

import (
	"fmt"
	"os"

	"budgetwise/internal/export"

	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the forecast as CSV (ds,yhat,yhat_lower,yhat_upper)",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output path (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	data, err := loadLedger(cfg)
	if err != nil {
		return err
	}

	rows, err := runForecastModel(cfg, data.Series)
	if err != nil {
		return err
	}

	if flagOut == "" {
		return export.WriteForecast(os.Stdout, rows)
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOut, err)
	}
	if err := export.WriteForecast(f, rows); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", flagOut, err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d forecast rows to %s\n", len(rows), flagOut)
	}
	return nil
}
