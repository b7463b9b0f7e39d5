package cmd

import (
	"fmt"
	"sort"

	"budgetwise/internal/budget"
	"budgetwise/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Per-category budget recommendation",
	Long:  "Forecast spending over the horizon, split it by historical category share, and scale it to income net of the savings target.",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	data, err := loadLedger(cfg)
	if err != nil {
		return err
	}

	forecastRows, err := runForecastModel(cfg, data.Series)
	if err != nil {
		return err
	}

	shares := budget.Shares(data.Records)
	catForecast := budget.Decompose(forecastRows, shares)
	plan := budget.Clean(budget.Recommend(catForecast, cfg.Budget.MonthlyIncome, cfg.Budget.SavingsTargetPct))

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET PLAN  %dd horizon", cfg.Forecast.HorizonDays)))
	fmt.Println()

	categories := make([]string, 0, len(plan.RecommendedByCategory))
	for cat := range plan.RecommendedByCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		a, b := plan.RecommendedByCategory[categories[i]], plan.RecommendedByCategory[categories[j]]
		if a != b {
			return a > b
		}
		return categories[i] < categories[j]
	})

	rows := make([][]string, 0, len(categories)+2)
	var recommendedTotal float64
	for _, cat := range categories {
		amount := plan.RecommendedByCategory[cat]
		recommendedTotal += amount
		rows = append(rows, []string{
			cat,
			cli.FormatPercent(shares[cat]),
			cli.FormatAmount(amount),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"total", "", cli.FormatAmount(recommendedTotal)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Hist Share", "Recommended"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Println(cli.RenderNote(fmt.Sprintf("income %s, savings target %s -> budget available %s",
		cli.FormatAmount(cfg.Budget.MonthlyIncome),
		cli.FormatPercent(cfg.Budget.SavingsTargetPct),
		cli.FormatAmount(plan.BudgetAvailable))))
	fmt.Println(cli.RenderNote(fmt.Sprintf("forecast total %s over %d days, scale %.3f",
		cli.FormatAmount(plan.TotalForecast), cfg.Forecast.HorizonDays, plan.Scale)))

	return nil
}
