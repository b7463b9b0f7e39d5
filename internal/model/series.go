package model

import "time"

// DailyPoint holds the summed spend for one calendar day that appears in
// the ledger. Days with no records do not produce a point.
type DailyPoint struct {
	Date  time.Time
	Total float64
}

// CalendarFeatures holds the derived attributes of a single date used as
// regressors by the feature-based forecast backends.
type CalendarFeatures struct {
	Year       int
	Month      int
	Day        int
	DayOfWeek  int // 0 = Monday .. 6 = Sunday
	WeekOfYear int
	DayOfYear  int
	MonthStart bool
	MonthEnd   bool
}

// CategoryTotal holds aggregated spend for one category.
type CategoryTotal struct {
	Category string
	Total    float64
	Records  int
	Share    float64 // fraction of grand total
}
