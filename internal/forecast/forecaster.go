// Package forecast provides interchangeable daily-spend forecasting
// backends behind a common point/interval contract.
package forecast

import (
	"errors"
	"fmt"
	"time"

	"budgetwise/internal/model"
	"budgetwise/internal/pipeline"
)

// Backend names accepted by New.
const (
	ModelSeasonal = "seasonal"
	ModelForest   = "forest"
	ModelBoost    = "boost"
)

// ensembleSeed fixes all stochastic ensemble construction so repeated
// runs on identical input yield identical forecasts.
const ensembleSeed = 42

var (
	ErrEmptySeries    = errors.New("forecast: empty series")
	ErrInvalidHorizon = errors.New("forecast: horizon must be positive")
)

// Forecaster produces exactly horizon rows, one per day strictly after
// the last observed date, in ascending order. Every invocation fits a
// fresh model from the full series; nothing is reused across calls.
type Forecaster interface {
	Forecast(series []model.DailyPoint, horizon int) ([]model.ForecastRow, error)
}

// Names lists the available backends in selection order.
func Names() []string {
	return []string{ModelSeasonal, ModelForest, ModelBoost}
}

// New returns the backend registered under name.
func New(name string) (Forecaster, error) {
	switch name {
	case ModelSeasonal:
		return NewSeasonal(), nil
	case ModelForest:
		return NewForest(), nil
	case ModelBoost:
		return NewBoost(), nil
	}
	return nil, fmt.Errorf("unknown forecast model %q (have %v)", name, Names())
}

func validate(series []model.DailyPoint, horizon int) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}
	if horizon < 1 {
		return ErrInvalidHorizon
	}
	return nil
}

// futureDates returns horizon consecutive days starting the day after last.
func futureDates(last time.Time, horizon int) []time.Time {
	dates := make([]time.Time, horizon)
	for i := range dates {
		dates[i] = last.AddDate(0, 0, i+1)
	}
	return dates
}

// calendarRow extracts the regressor vector [day-of-year, month,
// day-of-week, year] for one date.
func calendarRow(t time.Time) []float64 {
	f := pipeline.Features(t)
	return []float64{
		float64(f.DayOfYear),
		float64(f.Month),
		float64(f.DayOfWeek),
		float64(f.Year),
	}
}

// fixedBand wraps point estimates in the ±band heuristic interval used by
// the tree ensembles. This is deliberately not a statistical interval.
func fixedBand(dates []time.Time, preds []float64, band float64) []model.ForecastRow {
	rows := make([]model.ForecastRow, len(dates))
	for i := range dates {
		rows[i] = model.ForecastRow{
			Date:      dates[i],
			Yhat:      preds[i],
			YhatLower: preds[i] * (1 - band),
			YhatUpper: preds[i] * (1 + band),
		}
	}
	return rows
}
