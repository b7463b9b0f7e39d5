package budget

import (
	"math"

	"budgetwise/internal/model"
)

// scaleEpsilon floors the forecast total in the scale division so a ~0
// forecast cannot divide by zero.
const scaleEpsilon = 1e-6

// Recommend scales the category-decomposed forecast so that, before
// filtering, the recommended amounts sum to income net of the savings
// target.
func Recommend(catForecast []model.CategoryForecast, income, savingsTargetPct float64) model.BudgetPlan {
	var totalForecast float64
	catSums := make(map[string]float64)
	for _, cf := range catForecast {
		totalForecast += cf.Yhat
		catSums[cf.Category] += cf.Yhat
	}

	budgetAvailable := income * (1 - savingsTargetPct)
	scale := budgetAvailable / math.Max(totalForecast, scaleEpsilon)

	recommended := make(map[string]float64, len(catSums))
	for cat, sum := range catSums {
		recommended[cat] = scale * sum
	}

	return model.BudgetPlan{
		RecommendedByCategory: recommended,
		TotalForecast:         totalForecast,
		BudgetAvailable:       budgetAvailable,
		Scale:                 scale,
	}
}

// Clean drops unusable entries from the plan: empty or "nan" category
// keys, NaN amounts, and amounts at or below zero. Filtering may pull
// the realized sum below BudgetAvailable; that is expected.
func Clean(plan model.BudgetPlan) model.BudgetPlan {
	cleaned := make(map[string]float64, len(plan.RecommendedByCategory))
	for cat, amount := range plan.RecommendedByCategory {
		if cat == "" || cat == "nan" {
			continue
		}
		if math.IsNaN(amount) || amount <= 0 {
			continue
		}
		cleaned[cat] = amount
	}
	plan.RecommendedByCategory = cleaned
	return plan
}
