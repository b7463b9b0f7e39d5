package cmd

import (
	"fmt"

	"budgetwise/internal/cli"
	"budgetwise/internal/config"
	"budgetwise/internal/forecast"
	"budgetwise/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagEval bool

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast daily spending",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().BoolVar(&flagEval, "eval", false, "Score the model on a held-back suffix of history")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FORECAST  %s  %dd", cfg.Forecast.Model, cfg.Forecast.HorizonDays)))
	fmt.Println()

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		features := pipeline.Features(r.Date)
		tableRows = append(tableRows, []string{
			r.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(features.DayOfWeek),
			cli.FormatAmount(r.Yhat),
			cli.FormatAmount(r.YhatLower),
			cli.FormatAmount(r.YhatUpper),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Forecast", "Low", "High"},
		Rows:    tableRows,
	}))

	preds := make([]float64, len(rows))
	for i, r := range rows {
		preds[i] = r.Yhat
	}
	fmt.Println()
	fmt.Println("  " + cli.Sparkline(preds, cli.ColorGreen))
	if cfg.Forecast.Model == forecast.ModelSeasonal {
		fmt.Println(cli.RenderNote("interval estimated from fit residuals (~80%)"))
	} else {
		fmt.Println(cli.RenderNote("interval is a fixed ±10% band, not a statistical estimate"))
	}

	if flagEval {
		if err := printHoldoutMetrics(cfg, data); err != nil {
			return err
		}
	}

	return nil
}

// printHoldoutMetrics refits the model on a truncated prefix of history
// and scores it against the held-back suffix. Days absent from the
// ledger count as zero actual spend.
func printHoldoutMetrics(cfg config.Config, data *ledgerData) error {
	n := len(data.Series)
	holdback := n / 5
	if holdback > cfg.Forecast.HorizonDays {
		holdback = cfg.Forecast.HorizonDays
	}
	if holdback < 1 {
		return fmt.Errorf("not enough history to hold back an evaluation window (%d days)", n)
	}

	prefix := data.Series[:n-holdback]
	suffix := data.Series[n-holdback:]

	f, err := forecast.New(cfg.Forecast.Model)
	if err != nil {
		return err
	}
	rows, err := f.Forecast(prefix, holdback)
	if err != nil {
		return fmt.Errorf("holdout fit: %w", err)
	}

	// Align actuals by date; a forecast day with no ledger rows is a
	// zero-spend day.
	actualByDate := make(map[string]float64, len(suffix))
	for _, dp := range suffix {
		actualByDate[dp.Date.Format("2006-01-02")] = dp.Total
	}
	yTrue := make([]float64, len(rows))
	yPred := make([]float64, len(rows))
	for i, r := range rows {
		yTrue[i] = actualByDate[r.Date.Format("2006-01-02")]
		yPred[i] = r.Yhat
	}

	metrics := forecast.Evaluate(yTrue, yPred)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Holdout accuracy (last %d days)", holdback),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"MAE", cli.FormatAmount(metrics.MAE)},
			{"RMSE", cli.FormatAmount(metrics.RMSE)},
			{"MAPE", fmt.Sprintf("%.1f%%", metrics.MAPE)},
		},
	}))

	return nil
}
