// Package ledger reads expense CSV files and normalizes their rows into
// canonical records: parsed dates, repaired amounts, canonical categories.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"budgetwise/internal/model"
)

// Options selects the ledger columns. Zero-value fields fall back to the
// conventional names.
type Options struct {
	DateColumn     string
	AmountColumn   string
	CategoryColumn string

	// Synonyms, when non-nil, replaces the default category synonym
	// table (see MergedSynonyms).
	Synonyms map[string]string
}

func (o *Options) fill() {
	if o.DateColumn == "" {
		o.DateColumn = "date"
	}
	if o.AmountColumn == "" {
		o.AmountColumn = "amount"
	}
	if o.CategoryColumn == "" {
		o.CategoryColumn = "category"
	}
	if o.Synonyms == nil {
		o.Synonyms = defaultSynonyms
	}
}

// LoadResult holds the normalized records plus observability counts for
// rows the normalizer silently repaired or dropped.
type LoadResult struct {
	Records []model.LedgerRecord

	TotalRows    int
	DroppedDates int // rows excluded because the date failed to parse
	ZeroAmounts  int // rows whose amount text was coerced to 0.0
	HasCategory  bool
}

// Date layouts tried in order. First match wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"2 Jan 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			// Keep the calendar day only.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts Options) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f, opts)
}

// Read parses a CSV ledger into normalized records sorted ascending by
// date (stable). Rows with unparseable dates are dropped and counted;
// unparseable amounts become 0.0 and are counted; a missing category
// column assigns Uncategorized to every record.
func Read(r io.Reader, opts Options) (*LoadResult, error) {
	opts.fill()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	dateIdx, amountIdx, categoryIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case strings.ToLower(opts.DateColumn):
			dateIdx = i
		case strings.ToLower(opts.AmountColumn):
			amountIdx = i
		case strings.ToLower(opts.CategoryColumn):
			categoryIdx = i
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("ledger has no %q column", opts.DateColumn)
	}
	if amountIdx < 0 {
		return nil, fmt.Errorf("ledger has no %q column", opts.AmountColumn)
	}

	result := &LoadResult{HasCategory: categoryIdx >= 0}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		result.TotalRows++

		if dateIdx >= len(row) || amountIdx >= len(row) {
			result.DroppedDates++
			continue
		}

		date, ok := parseDate(row[dateIdx])
		if !ok {
			result.DroppedDates++
			continue
		}

		amount, parsed := parseAmount(row[amountIdx])
		if !parsed {
			result.ZeroAmounts++
		}

		category := Uncategorized
		if categoryIdx >= 0 {
			raw := ""
			if categoryIdx < len(row) {
				raw = row[categoryIdx]
			}
			category = CanonicalWith(raw, opts.Synonyms)
		}

		result.Records = append(result.Records, model.LedgerRecord{
			Date:     date,
			Amount:   amount,
			Category: category,
		})
	}

	sort.SliceStable(result.Records, func(i, j int) bool {
		return result.Records[i].Date.Before(result.Records[j].Date)
	})

	return result, nil
}

// DropUncategorizable filters out records whose category is empty or the
// literal text "nan". This is the caller-level gate applied before any
// aggregation or share computation. Returns the kept records and the
// number removed.
func DropUncategorizable(records []model.LedgerRecord) ([]model.LedgerRecord, int) {
	kept := make([]model.LedgerRecord, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if rec.Category == "" || rec.Category == "nan" {
			dropped++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, dropped
}
