package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"budgetwise/internal/model"
)

// Seasonal decomposes the series into a linear trend plus weekly and
// yearly Fourier harmonics, fitted by least squares. Its interval is the
// only statistically estimated one among the backends: residual standard
// deviation scaled to an ~80% band.
type Seasonal struct {
	YearlyOrder int
	WeeklyOrder int
	IntervalZ   float64
}

// NewSeasonal returns the seasonal backend with three harmonics per
// seasonality and an 80% interval.
func NewSeasonal() *Seasonal {
	return &Seasonal{YearlyOrder: 3, WeeklyOrder: 3, IntervalZ: 1.28}
}

const yearLength = 365.25

func (s *Seasonal) Forecast(series []model.DailyPoint, horizon int) ([]model.ForecastRow, error) {
	if err := validate(series, horizon); err != nil {
		return nil, err
	}

	n := len(series)
	last := series[n-1].Date
	future := futureDates(last, horizon)

	// A one-point history has nothing to decompose: flat forecast.
	if n < 2 {
		rows := make([]model.ForecastRow, horizon)
		for i, d := range future {
			rows[i] = model.ForecastRow{Date: d, Yhat: series[0].Total, YhatLower: series[0].Total, YhatUpper: series[0].Total}
		}
		return rows, nil
	}

	// Degrade harmonic counts until the design matrix is at least square.
	yearly, weekly := s.YearlyOrder, s.WeeklyOrder
	for (yearly > 0 || weekly > 0) && s.cols(yearly, weekly) > n {
		if yearly > 0 {
			yearly--
		} else {
			weekly--
		}
	}
	cols := s.cols(yearly, weekly)

	epoch := series[0].Date
	X := mat.NewDense(n, cols, nil)
	y := mat.NewDense(n, 1, nil)
	for i, dp := range series {
		t := float64(int(dp.Date.Sub(epoch).Hours() / 24))
		X.SetRow(i, s.designRow(t, cols, yearly, weekly))
		y.Set(i, 0, dp.Total)
	}

	var qr mat.QR
	qr.Factorize(X)
	beta := mat.NewDense(cols, 1, nil)
	if err := qr.SolveTo(beta, false, y); err != nil {
		return nil, fmt.Errorf("seasonal fit: %w", err)
	}

	// Residual spread drives the interval width.
	residuals := make([]float64, n)
	for i, dp := range series {
		t := float64(int(dp.Date.Sub(epoch).Hours() / 24))
		residuals[i] = dp.Total - dot(s.designRow(t, cols, yearly, weekly), beta)
	}
	sigma := stat.StdDev(residuals, nil)
	if math.IsNaN(sigma) {
		sigma = 0
	}

	rows := make([]model.ForecastRow, horizon)
	for i, d := range future {
		t := float64(int(d.Sub(epoch).Hours() / 24))
		yhat := dot(s.designRow(t, cols, yearly, weekly), beta)
		rows[i] = model.ForecastRow{
			Date:      d,
			Yhat:      yhat,
			YhatLower: yhat - s.IntervalZ*sigma,
			YhatUpper: yhat + s.IntervalZ*sigma,
		}
	}
	return rows, nil
}

func (s *Seasonal) cols(yearly, weekly int) int {
	return 2 + 2*yearly + 2*weekly
}

// designRow builds [1, t, yearly harmonics..., weekly harmonics...] for
// day offset t.
func (s *Seasonal) designRow(t float64, cols, yearly, weekly int) []float64 {
	row := make([]float64, 0, cols)
	row = append(row, 1, t)
	for k := 1; k <= yearly; k++ {
		arg := 2 * math.Pi * float64(k) * t / yearLength
		row = append(row, math.Sin(arg), math.Cos(arg))
	}
	for k := 1; k <= weekly; k++ {
		arg := 2 * math.Pi * float64(k) * t / 7
		row = append(row, math.Sin(arg), math.Cos(arg))
	}
	return row
}

func dot(row []float64, beta *mat.Dense) float64 {
	var sum float64
	for i, v := range row {
		sum += v * beta.At(i, 0)
	}
	return sum
}
