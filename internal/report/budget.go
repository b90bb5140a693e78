package report

import "github.com/dabbulu/dabbulu/internal/model"

// BudgetStatus classifies monthly spend against a budget limit.
type BudgetStatus string

const (
	// StatusOK means spend is at or below 80% of the limit.
	StatusOK BudgetStatus = "ok"
	// StatusNearLimit means spend is above 80% and at most 100% of the limit.
	StatusNearLimit BudgetStatus = "near-limit"
	// StatusOverLimit means spend exceeds the limit.
	StatusOverLimit BudgetStatus = "over-limit"
)

// BudgetAlert is the derived comparison of one budget against the
// current month's category spend.
type BudgetAlert struct {
	Budget     model.Budget
	Category   model.Category
	Status     BudgetStatus
	Spent      float64
	Percentage float64
	Remaining  float64
}

// statusFor classifies a percentage of limit consumed.
func statusFor(percentage float64) BudgetStatus {
	switch {
	case percentage > 100:
		return StatusOverLimit
	case percentage > 80:
		return StatusNearLimit
	default:
		return StatusOK
	}
}

// EvaluateBudgets compares every budget against the month's category
// spends. A category absent from spends means no spend this month. A
// zero monthly limit yields a defined percentage of 0 (status ok), never
// a divide-by-zero. The full list, ok entries included, feeds the budget
// management view; Alerts filters it for alerting.
func EvaluateBudgets(budgets []model.Budget, spends []CategorySpend, catalog model.Catalog) []BudgetAlert {
	spentByCategory := make(map[string]float64, len(spends))
	for _, cs := range spends {
		spentByCategory[cs.Category.ID] = cs.Amount
	}

	alerts := make([]BudgetAlert, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.CategoryID]

		percentage := 0.0
		if b.MonthlyLimit > 0 {
			percentage = spent / b.MonthlyLimit * 100
		}

		category, _ := catalog.ByID(b.CategoryID)

		alerts = append(alerts, BudgetAlert{
			Budget:     b,
			Category:   category,
			Spent:      spent,
			Percentage: percentage,
			Remaining:  b.MonthlyLimit - spent,
			Status:     statusFor(percentage),
		})
	}

	return alerts
}

// Alerts returns only the entries that warrant attention (near-limit or
// over-limit).
func Alerts(alerts []BudgetAlert) []BudgetAlert {
	filtered := make([]BudgetAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status != StatusOK {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
