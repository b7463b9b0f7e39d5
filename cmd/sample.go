package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"
)

var (
	flagSampleOut  string
	flagSampleDays int
	flagSampleSeed uint64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic demo ledger CSV",
	Long:  "Writes a deterministic synthetic ledger with deliberately messy amounts and category labels, so the normalizer has real work to do.",
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&flagSampleOut, "out", "o", "sample_ledger.csv", "Output path")
	sampleCmd.Flags().IntVar(&flagSampleDays, "days", 365, "Number of ledger days")
	sampleCmd.Flags().Uint64Var(&flagSampleSeed, "seed", 42, "Random seed")
	rootCmd.AddCommand(sampleCmd)
}

// Category labels as they appear in real exports: canonical names mixed
// with the misspellings the synonym table repairs.
var sampleCategories = []string{
	"food", "fod", "foods", "rent", "rnt", "utilities", "utility",
	"travel", "travl", "health", "helth", "entertainment", "entrtnmnt",
	"education", "edu", "misc", "other", "salary", "savings",
}

func runSample(_ *cobra.Command, _ []string) error {
	faker := gofakeit.New(flagSampleSeed)

	f, err := os.Create(flagSampleOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagSampleOut, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "amount", "category"}); err != nil {
		_ = f.Close()
		return err
	}

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := 0
	for d := 0; d < flagSampleDays; d++ {
		date := start.AddDate(0, 0, d)
		for i := 0; i < faker.Number(0, 3); i++ {
			if err := w.Write([]string{
				date.Format("2006-01-02"),
				messyAmount(faker),
				faker.RandomString(sampleCategories),
			}); err != nil {
				_ = f.Close()
				return err
			}
			rows++
		}
	}

	// A few rows the normalizer must drop or repair.
	_ = w.Write([]string{"not-a-date", "50", "food"})
	_ = w.Write([]string{start.Format("2006-01-02"), "???", "misc"})
	_ = w.Write([]string{start.AddDate(0, 0, 1).Format("2006-01-02"), "10", "nan"})

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", flagSampleOut, err)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %d ledger rows to %s\n", rows+3, flagSampleOut)
	}
	return nil
}

// messyAmount renders a price in one of the formats seen in the wild:
// plain, currency-prefixed, comma-separated, or accounting negative.
func messyAmount(faker *gofakeit.Faker) string {
	price := faker.Price(2, 400)
	switch faker.Number(0, 4) {
	case 0:
		return fmt.Sprintf("$%.2f", price)
	case 1:
		return fmt.Sprintf("(%.2f)", price) // refund
	case 2:
		return fmt.Sprintf("%.2f", price)
	case 3:
		return fmt.Sprintf("$%s", commaSeparated(price*10))
	default:
		return fmt.Sprintf("%.2f ", price)
	}
}

func commaSeparated(v float64) string {
	whole := int64(v)
	frac := int64((v - float64(whole)) * 100)
	if whole < 1000 {
		return fmt.Sprintf("%d.%02d", whole, frac)
	}
	return fmt.Sprintf("%d,%03d.%02d", whole/1000, whole%1000, frac)
}
