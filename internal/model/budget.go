package model

// BudgetPlan is the per-category spending recommendation scaled to the
// income available after the savings target.
//
// Before filtering, the recommended amounts sum to BudgetAvailable
// whenever TotalForecast is positive.
type BudgetPlan struct {
	RecommendedByCategory map[string]float64
	TotalForecast         float64
	BudgetAvailable       float64
	Scale                 float64
}
