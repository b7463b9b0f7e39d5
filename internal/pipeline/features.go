package pipeline

import (
	"time"

	"budgetwise/internal/model"
)

// Features derives the calendar attributes of a single date. Pure and
// stateless; feature-based forecast backends call this for historical and
// future dates alike.
//
// DayOfWeek uses the 0=Monday convention.
func Features(t time.Time) model.CalendarFeatures {
	_, week := t.ISOWeek()
	nextDay := t.AddDate(0, 0, 1)

	return model.CalendarFeatures{
		Year:       t.Year(),
		Month:      int(t.Month()),
		Day:        t.Day(),
		DayOfWeek:  (int(t.Weekday()) + 6) % 7,
		WeekOfYear: week,
		DayOfYear:  t.YearDay(),
		MonthStart: t.Day() == 1,
		MonthEnd:   nextDay.Day() == 1,
	}
}
