package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabbulu/dabbulu/internal/model"
)

func budget(id, categoryID string, limit float64) model.Budget {
	return model.Budget{
		ID:           id,
		UserID:       "u1",
		CategoryID:   categoryID,
		MonthlyLimit: limit,
	}
}

func spend(categoryID string, amount float64) CategorySpend {
	catalog := model.DefaultCatalog()
	cat, _ := catalog.ByID(categoryID)
	return CategorySpend{Category: cat, Amount: amount}
}

func TestEvaluateBudgetsStatuses(t *testing.T) {
	catalog := model.DefaultCatalog()

	tests := []struct {
		name       string
		limit      float64
		spent      float64
		wantStatus BudgetStatus
		wantPct    float64
	}{
		{name: "well under", limit: 1000, spent: 100, wantStatus: StatusOK, wantPct: 10},
		{name: "exactly 80 percent is ok", limit: 100, spent: 80, wantStatus: StatusOK, wantPct: 80},
		{name: "just above 80 percent", limit: 1000, spent: 801, wantStatus: StatusNearLimit, wantPct: 80.1},
		{name: "exactly at limit", limit: 100, spent: 100, wantStatus: StatusNearLimit, wantPct: 100},
		{name: "over limit", limit: 250, spent: 300, wantStatus: StatusOverLimit, wantPct: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets := []model.Budget{budget("b1", "2", tt.limit)}
			spends := []CategorySpend{spend("2", tt.spent)}

			alerts := EvaluateBudgets(budgets, spends, catalog)
			require.Len(t, alerts, 1)

			a := alerts[0]
			assert.Equal(t, tt.wantStatus, a.Status)
			assert.InDelta(t, tt.wantPct, a.Percentage, 0.001)
			assert.InDelta(t, tt.limit-tt.spent, a.Remaining, 0.001)
			assert.Equal(t, "Mess/Food", a.Category.Name)
		})
	}
}

func TestEvaluateBudgetsOverLimitScenario(t *testing.T) {
	catalog := model.DefaultCatalog()
	budgets := []model.Budget{budget("b1", "2", 250)}
	spends := []CategorySpend{spend("2", 300)}

	alerts := EvaluateBudgets(budgets, spends, catalog)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, StatusOverLimit, a.Status)
	assert.InDelta(t, 120, a.Percentage, 0.001)
	assert.InDelta(t, -50, a.Remaining, 0.001)
}

func TestEvaluateBudgetsZeroLimit(t *testing.T) {
	catalog := model.DefaultCatalog()
	budgets := []model.Budget{budget("b1", "2", 0)}
	spends := []CategorySpend{spend("2", 300)}

	alerts := EvaluateBudgets(budgets, spends, catalog)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Zero(t, a.Percentage)
	assert.Equal(t, StatusOK, a.Status)
	assert.InDelta(t, -300, a.Remaining, 0.001)
}

func TestEvaluateBudgetsNoSpendThisMonth(t *testing.T) {
	catalog := model.DefaultCatalog()
	budgets := []model.Budget{budget("b1", "1", 5000)}

	alerts := EvaluateBudgets(budgets, nil, catalog)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Zero(t, a.Spent)
	assert.Zero(t, a.Percentage)
	assert.Equal(t, StatusOK, a.Status)
	assert.InDelta(t, 5000, a.Remaining, 0.001)
}

func TestEvaluateBudgetsUnknownCategory(t *testing.T) {
	// A budget against an id missing from the catalog still evaluates;
	// the category field just stays zero-valued.
	catalog := model.DefaultCatalog()
	budgets := []model.Budget{budget("b1", "999", 100)}

	alerts := EvaluateBudgets(budgets, nil, catalog)
	require.Len(t, alerts, 1)
	assert.Empty(t, alerts[0].Category.ID)
	assert.Equal(t, StatusOK, alerts[0].Status)
}

func TestAlertsFiltersOKEntries(t *testing.T) {
	catalog := model.DefaultCatalog()
	budgets := []model.Budget{
		budget("b1", "1", 1000), // ok
		budget("b2", "2", 250),  // over
		budget("b3", "4", 100),  // near
	}
	spends := []CategorySpend{
		spend("1", 100),
		spend("2", 300),
		spend("4", 90),
	}

	all := EvaluateBudgets(budgets, spends, catalog)
	require.Len(t, all, 3)

	alerts := Alerts(all)
	require.Len(t, alerts, 2)
	assert.Equal(t, "2", alerts[0].Budget.CategoryID)
	assert.Equal(t, StatusOverLimit, alerts[0].Status)
	assert.Equal(t, "4", alerts[1].Budget.CategoryID)
	assert.Equal(t, StatusNearLimit, alerts[1].Status)
}

func TestEvaluateBudgetsWithAggregateOutput(t *testing.T) {
	// End-to-end over the two derived views: aggregation feeds evaluation.
	catalog := model.DefaultCatalog()
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 100),
		expense("e2", "2024-06-02", "2", 200),
	}
	summary := Aggregate(expenses, catalog, "2024-06-02")

	budgets := []model.Budget{budget("b1", "2", 250)}
	alerts := EvaluateBudgets(budgets, summary.CategorySpends, catalog)

	require.Len(t, alerts, 1)
	assert.Equal(t, StatusOverLimit, alerts[0].Status)
	assert.InDelta(t, 300, alerts[0].Spent, 0.001)
}
