package pipeline

import (
	"math"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
)

// MovingAverage computes a simple moving average over values, aligned to
// the input: the first period-1 positions are NaN since no full window
// exists yet. Used by the daily view to smooth the spend series.
func MovingAverage(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if period < 1 || len(values) < period {
		return out
	}

	sma := trend.NewSmaWithPeriod[float64](period)
	smoothed := helper.ChanToSlice(sma.Compute(helper.SliceToChan(values)))

	// The indicator emits len(values)-period+1 points, one per complete
	// window ending at values[i+period-1].
	for i, v := range smoothed {
		out[i+period-1] = v
	}
	return out
}
