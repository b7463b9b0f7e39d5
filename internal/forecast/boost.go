package forecast

import (
	"budgetwise/internal/model"
)

// Boost is a gradient-boosted tree ensemble on calendar features. The
// series is split chronologically (no shuffling) into a training prefix
// and a held-out suffix; boosting fits the prefix only. The interval is
// the same fixed ±10% band the bagging backend uses.
//
// Precondition (caller-guarded): at least 2 distinct dates in the series.
type Boost struct {
	Rounds        int
	LearningRate  float64
	MaxDepth      int
	TrainFraction float64
	Band          float64
}

// NewBoost returns the boosting backend: 300 rounds, learning rate 0.05,
// depth-5 trees, chronological 80/20 split.
func NewBoost() *Boost {
	return &Boost{Rounds: 300, LearningRate: 0.05, MaxDepth: 5, TrainFraction: 0.8, Band: 0.10}
}

func (b *Boost) Forecast(series []model.DailyPoint, horizon int) ([]model.ForecastRow, error) {
	if err := validate(series, horizon); err != nil {
		return nil, err
	}

	n := len(series)
	nTrain := int(float64(n) * b.TrainFraction)
	if nTrain < 1 {
		nTrain = n
	}

	X := make([][]float64, nTrain)
	y := make([]float64, nTrain)
	idx := make([]int, nTrain)
	for i := 0; i < nTrain; i++ {
		X[i] = calendarRow(series[i].Date)
		y[i] = series[i].Total
		idx[i] = i
	}

	// Squared-loss boosting: each round fits a tree to the current
	// residuals and shrinks it by the learning rate.
	base := meanAt(y, idx)
	current := make([]float64, nTrain)
	for i := range current {
		current[i] = base
	}

	residuals := make([]float64, nTrain)
	trees := make([]*regressionTree, 0, b.Rounds)
	for round := 0; round < b.Rounds; round++ {
		for i := range residuals {
			residuals[i] = y[i] - current[i]
		}
		tree := newRegressionTree(b.MaxDepth, 1)
		tree.fit(X, residuals, idx)
		trees = append(trees, tree)
		for i := range current {
			current[i] += b.LearningRate * tree.predict(X[i])
		}
	}

	future := futureDates(series[n-1].Date, horizon)
	preds := make([]float64, horizon)
	for i, d := range future {
		row := calendarRow(d)
		yhat := base
		for _, tree := range trees {
			yhat += b.LearningRate * tree.predict(row)
		}
		preds[i] = yhat
	}

	return fixedBand(future, preds, b.Band), nil
}
