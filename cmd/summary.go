package cmd

import (
	"fmt"

	"budgetwise/internal/cli"
	"budgetwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Category spend summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	data, err := loadLedger(cfg)
	if err != nil {
		return err
	}
	if len(data.Records) == 0 {
		fmt.Println("\n  No usable ledger rows.")
		return nil
	}

	categories := pipeline.AggregateCategories(data.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING SUMMARY"))
	fmt.Println()

	rows := make([][]string, 0, len(categories))
	var total float64
	for _, c := range categories {
		total += c.Total
		rows = append(rows, []string{
			c.Category,
			cli.FormatNumber(int64(c.Records)),
			cli.FormatAmount(c.Total),
			cli.FormatPercent(c.Share),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"total",
		cli.FormatNumber(int64(len(data.Records))),
		cli.FormatAmount(total),
		"",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Records", "Total", "Share"},
		Rows:    rows,
	}))

	// Daily spend shape across the whole ledger.
	totals := make([]float64, len(data.Series))
	for i, dp := range data.Series {
		totals[i] = dp.Total
	}
	fmt.Println()
	fmt.Println("  " + cli.Sparkline(totals, cli.ColorBlue))
	fmt.Println(cli.RenderNote(fmt.Sprintf("daily spend, %s to %s",
		data.Series[0].Date.Format("2006-01-02"),
		data.Series[len(data.Series)-1].Date.Format("2006-01-02"))))

	return nil
}
