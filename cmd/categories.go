package cmd

import (
	"fmt"
	"sort"
	"strings"

	"budgetwise/internal/cli"
	"budgetwise/internal/ledger"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show canonical categories and the synonym table",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  Canonical categories:")
	fmt.Println("    " + strings.Join(ledger.CanonicalCategories, ", "))
	fmt.Println()

	table := ledger.MergedSynonyms(cfg.Ledger.Synonyms)

	synonyms := make([]string, 0, len(table))
	for from, to := range table {
		if from == to {
			continue
		}
		synonyms = append(synonyms, from)
	}
	sort.Strings(synonyms)

	rows := make([][]string, 0, len(synonyms))
	for _, from := range synonyms {
		rows = append(rows, []string{from, table[from]})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Synonym", "Category"},
		Rows:    rows,
	}))

	if len(cfg.Ledger.Synonyms) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderNote(fmt.Sprintf("%d overrides from config", len(cfg.Ledger.Synonyms))))
	}
	return nil
}
