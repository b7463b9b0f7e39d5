// Package pipeline collapses normalized ledger records into the daily
// series and derived views consumed by forecasting and rendering.
package pipeline

import (
	"sort"
	"time"

	"budgetwise/internal/model"
)

// Aggregate groups records by exact calendar date and sums their amounts.
// The result is sorted ascending. Days absent from the ledger produce no
// point: there is no gap filling.
func Aggregate(records []model.LedgerRecord) []model.DailyPoint {
	dayMap := make(map[string]*model.DailyPoint)

	for _, rec := range records {
		key := rec.Date.Format("2006-01-02")
		dp, ok := dayMap[key]
		if !ok {
			dp = &model.DailyPoint{Date: rec.Date}
			dayMap[key] = dp
		}
		dp.Total += rec.Amount
	}

	series := make([]model.DailyPoint, 0, len(dayMap))
	for _, dp := range dayMap {
		series = append(series, *dp)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// AggregateCategories computes per-category totals, record counts, and
// each category's share of the grand total. Sorted by total descending.
// Negative amounts count toward both numerator and denominator as-is.
func AggregateCategories(records []model.LedgerRecord) []model.CategoryTotal {
	catMap := make(map[string]*model.CategoryTotal)
	var grandTotal float64

	for _, rec := range records {
		ct, ok := catMap[rec.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: rec.Category}
			catMap[rec.Category] = ct
		}
		ct.Total += rec.Amount
		ct.Records++
		grandTotal += rec.Amount
	}

	categories := make([]model.CategoryTotal, 0, len(catMap))
	for _, ct := range catMap {
		if grandTotal != 0 {
			ct.Share = ct.Total / grandTotal
		}
		categories = append(categories, *ct)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Total != categories[j].Total {
			return categories[i].Total > categories[j].Total
		}
		return categories[i].Category < categories[j].Category
	})

	return categories
}

// FilterByTime returns records whose date falls within [since, until).
// Zero bounds are open.
func FilterByTime(records []model.LedgerRecord, since, until time.Time) []model.LedgerRecord {
	if since.IsZero() && until.IsZero() {
		return records
	}

	var result []model.LedgerRecord
	for _, rec := range records {
		if !since.IsZero() && rec.Date.Before(since) {
			continue
		}
		if !until.IsZero() && !rec.Date.Before(until) {
			continue
		}
		result = append(result, rec)
	}
	return result
}
