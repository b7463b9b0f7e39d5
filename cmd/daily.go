package cmd

import (
	"fmt"
	"math"

	"budgetwise/internal/cli"
	"budgetwise/internal/pipeline"

	"github.com/spf13/cobra"
)

const trendPeriod = 7

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily totals with a 7-day moving average",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	data, err := loadLedger(cfg)
	if err != nil {
		return err
	}
	if len(data.Series) == 0 {
		fmt.Println("\n  No usable ledger rows.")
		return nil
	}

	totals := make([]float64, len(data.Series))
	for i, dp := range data.Series {
		totals[i] = dp.Total
	}
	smoothed := pipeline.MovingAverage(totals, trendPeriod)

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY SPEND"))
	fmt.Println()

	rows := make([][]string, 0, len(data.Series))
	for i, dp := range data.Series {
		avg := ""
		if !math.IsNaN(smoothed[i]) {
			avg = cli.FormatAmount(smoothed[i])
		}
		features := pipeline.Features(dp.Date)
		rows = append(rows, []string{
			dp.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(features.DayOfWeek),
			cli.FormatAmount(dp.Total),
			avg,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Total", "7d Avg"},
		Rows:    rows,
	}))

	return nil
}
