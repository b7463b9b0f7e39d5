package forecast

import (
	"math"

	"budgetwise/internal/model"
)

// mapeEpsilon floors the denominator so zero or near-zero actuals do not
// blow up the percentage error.
const mapeEpsilon = 1e-6

// Evaluate scores forecast point estimates against realized actuals.
// The sequences must be equal length and index-aligned; that is the
// caller's responsibility.
func Evaluate(yTrue, yPred []float64) model.Metrics {
	n := float64(len(yTrue))
	if n == 0 {
		return model.Metrics{}
	}

	var absSum, sqSum, pctSum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		absSum += math.Abs(diff)
		sqSum += diff * diff
		pctSum += math.Abs(diff / math.Max(yTrue[i], mapeEpsilon))
	}

	return model.Metrics{
		MAE:  absSum / n,
		RMSE: math.Sqrt(sqSum / n),
		MAPE: pctSum / n * 100,
	}
}
