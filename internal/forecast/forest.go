package forecast

import (
	"math/rand"

	"budgetwise/internal/model"
)

// Forest is a bootstrap-aggregated ensemble of regression trees fitted on
// calendar features. Future days are predicted from their calendar
// features alone; there are no lag or autoregressive inputs. The interval
// is a fixed ±10% band, not a statistical estimate.
//
// Precondition (caller-guarded): at least 2 distinct dates in the series.
type Forest struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Band     float64
}

// NewForest returns the bagging backend: 200 trees, ±10% band.
func NewForest() *Forest {
	return &Forest{Trees: 200, MaxDepth: 16, MinLeaf: 1, Band: 0.10}
}

func (f *Forest) Forecast(series []model.DailyPoint, horizon int) ([]model.ForecastRow, error) {
	if err := validate(series, horizon); err != nil {
		return nil, err
	}

	n := len(series)
	X := make([][]float64, n)
	y := make([]float64, n)
	for i, dp := range series {
		X[i] = calendarRow(dp.Date)
		y[i] = dp.Total
	}

	rng := rand.New(rand.NewSource(ensembleSeed))
	trees := make([]*regressionTree, f.Trees)
	sample := make([]int, n)
	for t := range trees {
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		tree := newRegressionTree(f.MaxDepth, f.MinLeaf)
		tree.fit(X, y, sample)
		trees[t] = tree
	}

	future := futureDates(series[n-1].Date, horizon)
	preds := make([]float64, horizon)
	for i, d := range future {
		row := calendarRow(d)
		var sum float64
		for _, tree := range trees {
			sum += tree.predict(row)
		}
		preds[i] = sum / float64(len(trees))
	}

	return fixedBand(future, preds, f.Band), nil
}
