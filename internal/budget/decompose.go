// Package budget turns an aggregate forecast into a per-category spending
// plan: historical shares decompose the forecast, and the optimizer
// scales it to the income left after the savings target.
package budget

import (
	"sort"

	"budgetwise/internal/model"
)

// Shares computes each category's fraction of total historical spend.
// Signs are preserved: refunds count toward both numerator and
// denominator as-is. A zero grand total yields an empty map.
func Shares(records []model.LedgerRecord) map[string]float64 {
	totals := make(map[string]float64)
	var grandTotal float64
	for _, rec := range records {
		totals[rec.Category] += rec.Amount
		grandTotal += rec.Amount
	}
	if grandTotal == 0 {
		return map[string]float64{}
	}

	shares := make(map[string]float64, len(totals))
	for cat, total := range totals {
		shares[cat] = total / grandTotal
	}
	return shares
}

// Decompose multiplies each future day's aggregate point estimate by each
// category's historical share. Shares are static across the horizon.
// Output is ordered by date, then category, for deterministic rendering.
func Decompose(forecast []model.ForecastRow, shares map[string]float64) []model.CategoryForecast {
	categories := make([]string, 0, len(shares))
	for cat := range shares {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	out := make([]model.CategoryForecast, 0, len(forecast)*len(categories))
	for _, row := range forecast {
		for _, cat := range categories {
			out = append(out, model.CategoryForecast{
				Date:     row.Date,
				Category: cat,
				Yhat:     row.Yhat * shares[cat],
			})
		}
	}
	return out
}
