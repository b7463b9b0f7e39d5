package model

import "time"

// ForecastRow is one future day of a forecast: a point estimate with a
// lower/upper band. Band semantics differ by backend: the seasonal model
// estimates its band from residuals, the tree ensembles emit a fixed
// ±10% heuristic band.
type ForecastRow struct {
	Date      time.Time
	Yhat      float64
	YhatLower float64
	YhatUpper float64
}

// CategoryForecast is one (future date, category) cell of a decomposed
// forecast.
type CategoryForecast struct {
	Date     time.Time
	Category string
	Yhat     float64
}

// Metrics holds forecast accuracy scores. MAPE is in percent units.
type Metrics struct {
	MAE  float64
	RMSE float64
	MAPE float64
}
