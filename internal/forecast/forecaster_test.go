package forecast

import (
	"math"
	"testing"
	"time"

	"budgetwise/internal/model"
)

// synthSeries builds n days of spend ending before any forecast window,
// with a weekly rhythm so the models have structure to find.
func synthSeries(n int) []model.DailyPoint {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make([]model.DailyPoint, n)
	for i := range series {
		d := start.AddDate(0, 0, i)
		total := 100.0 + 20*math.Sin(2*math.Pi*float64(i)/7) + float64(i)*0.1
		series[i] = model.DailyPoint{Date: d, Total: total}
	}
	return series
}

func TestNew_KnownModels(t *testing.T) {
	for _, name := range Names() {
		if _, err := New(name); err != nil {
			t.Errorf("New(%q) error: %v", name, err)
		}
	}
	if _, err := New("prophet"); err == nil {
		t.Error("New(prophet) should fail")
	}
}

func TestForecast_ShapeInvariant(t *testing.T) {
	series := synthSeries(120)
	last := series[len(series)-1].Date

	for _, name := range Names() {
		f, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}

		for _, horizon := range []int{1, 30, 90} {
			rows, err := f.Forecast(series, horizon)
			if err != nil {
				t.Fatalf("%s horizon=%d: %v", name, horizon, err)
			}
			if len(rows) != horizon {
				t.Fatalf("%s horizon=%d: got %d rows", name, horizon, len(rows))
			}
			if !rows[0].Date.Equal(last.AddDate(0, 0, 1)) {
				t.Errorf("%s: first date = %v, want day after %v", name, rows[0].Date, last)
			}
			for i := 1; i < len(rows); i++ {
				if !rows[i].Date.After(rows[i-1].Date) {
					t.Errorf("%s: dates not strictly increasing at %d", name, i)
				}
			}
		}
	}
}

func TestForecast_Deterministic(t *testing.T) {
	series := synthSeries(90)

	for _, name := range Names() {
		f1, _ := New(name)
		f2, _ := New(name)

		rows1, err := f1.Forecast(series, 30)
		if err != nil {
			t.Fatalf("%s first run: %v", name, err)
		}
		rows2, err := f2.Forecast(series, 30)
		if err != nil {
			t.Fatalf("%s second run: %v", name, err)
		}

		for i := range rows1 {
			if rows1[i].Yhat != rows2[i].Yhat {
				t.Errorf("%s: run divergence at row %d: %v vs %v", name, i, rows1[i].Yhat, rows2[i].Yhat)
			}
		}
	}
}

func TestForecast_TreeBandsAreFixedTenPercent(t *testing.T) {
	series := synthSeries(60)

	for _, name := range []string{ModelForest, ModelBoost} {
		f, _ := New(name)
		rows, err := f.Forecast(series, 10)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, r := range rows {
			if math.Abs(r.YhatLower-0.9*r.Yhat) > 1e-9 {
				t.Errorf("%s: lower = %v, want 0.9*yhat = %v", name, r.YhatLower, 0.9*r.Yhat)
			}
			if math.Abs(r.YhatUpper-1.1*r.Yhat) > 1e-9 {
				t.Errorf("%s: upper = %v, want 1.1*yhat = %v", name, r.YhatUpper, 1.1*r.Yhat)
			}
		}
	}
}

func TestForecast_InvalidInputs(t *testing.T) {
	f, _ := New(ModelSeasonal)

	if _, err := f.Forecast(nil, 10); err == nil {
		t.Error("empty series should error")
	}
	if _, err := f.Forecast(synthSeries(10), 0); err == nil {
		t.Error("zero horizon should error")
	}
}
