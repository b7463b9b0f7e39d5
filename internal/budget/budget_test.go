package budget

import (
	"math"
	"testing"
	"time"

	"budgetwise/internal/model"
)

func day(d int) time.Time {
	return time.Date(2023, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestShares(t *testing.T) {
	records := []model.LedgerRecord{
		{Date: day(1), Amount: 300, Category: "food"},
		{Date: day(2), Amount: 100, Category: "rent"},
		{Date: day(3), Amount: -100, Category: "food"}, // refund counts as-is
	}

	shares := Shares(records)
	if got := shares["food"]; math.Abs(got-200.0/300.0) > 1e-9 {
		t.Errorf("food share = %v, want 2/3", got)
	}
	if got := shares["rent"]; math.Abs(got-100.0/300.0) > 1e-9 {
		t.Errorf("rent share = %v, want 1/3", got)
	}
}

func TestShares_ZeroGrandTotal(t *testing.T) {
	records := []model.LedgerRecord{
		{Date: day(1), Amount: 50, Category: "food"},
		{Date: day(2), Amount: -50, Category: "food"},
	}
	if got := Shares(records); len(got) != 0 {
		t.Errorf("shares = %v, want empty map for zero grand total", got)
	}
}

func TestDecompose(t *testing.T) {
	forecast := []model.ForecastRow{
		{Date: day(10), Yhat: 100},
		{Date: day(11), Yhat: 200},
	}
	shares := map[string]float64{"food": 0.75, "rent": 0.25}

	out := Decompose(forecast, shares)
	if len(out) != 4 {
		t.Fatalf("cells = %d, want 4 (2 dates x 2 categories)", len(out))
	}
	// Sorted: per date, categories ascending.
	if out[0].Category != "food" || out[0].Yhat != 75 {
		t.Errorf("out[0] = %+v, want food 75", out[0])
	}
	if out[1].Category != "rent" || out[1].Yhat != 25 {
		t.Errorf("out[1] = %+v, want rent 25", out[1])
	}
	if out[2].Yhat != 150 || out[3].Yhat != 50 {
		t.Errorf("second day = %v/%v, want 150/50", out[2].Yhat, out[3].Yhat)
	}
}

func TestRecommend_Conservation(t *testing.T) {
	catForecast := []model.CategoryForecast{
		{Date: day(10), Category: "food", Yhat: 900},
		{Date: day(10), Category: "rent", Yhat: 2100},
		{Date: day(11), Category: "food", Yhat: 1000},
	}

	income, savings := 5000.0, 0.2
	plan := Recommend(catForecast, income, savings)

	wantAvailable := income * (1 - savings)
	if math.Abs(plan.BudgetAvailable-wantAvailable) > 1e-9 {
		t.Errorf("BudgetAvailable = %v, want %v", plan.BudgetAvailable, wantAvailable)
	}
	if plan.TotalForecast != 4000 {
		t.Errorf("TotalForecast = %v, want 4000", plan.TotalForecast)
	}

	var sum float64
	for _, amount := range plan.RecommendedByCategory {
		sum += amount
	}
	if math.Abs(sum-wantAvailable) > 1e-6*wantAvailable {
		t.Errorf("pre-filter sum = %v, want %v (conservation)", sum, wantAvailable)
	}

	// Category splits follow forecast proportions.
	if got := plan.RecommendedByCategory["food"]; math.Abs(got-wantAvailable*1900/4000) > 1e-6 {
		t.Errorf("food = %v, want %v", got, wantAvailable*1900/4000)
	}
}

func TestRecommend_ZeroForecastGuard(t *testing.T) {
	plan := Recommend(nil, 5000, 0.2)
	if math.IsInf(plan.Scale, 0) || math.IsNaN(plan.Scale) {
		t.Errorf("Scale = %v, want finite via epsilon floor", plan.Scale)
	}
}

func TestClean(t *testing.T) {
	plan := model.BudgetPlan{
		RecommendedByCategory: map[string]float64{
			"food": 100,
			"nan":  50,
			"":     25,
			"rent": 0,
			"misc": -10,
			"bad":  math.NaN(),
		},
	}

	cleaned := Clean(plan)
	if len(cleaned.RecommendedByCategory) != 1 {
		t.Fatalf("cleaned entries = %d, want 1: %v", len(cleaned.RecommendedByCategory), cleaned.RecommendedByCategory)
	}
	if cleaned.RecommendedByCategory["food"] != 100 {
		t.Errorf("food = %v, want 100", cleaned.RecommendedByCategory["food"])
	}
}
