package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dabbulu/dabbulu/internal/model"
)

func expense(id, date, categoryID string, amount float64) model.Expense {
	return model.Expense{
		ID:            id,
		UserID:        "u1",
		Date:          date,
		Amount:        amount,
		PaymentMethod: model.PaymentUPI,
		CategoryID:    categoryID,
	}
}

func TestAggregateEmptyList(t *testing.T) {
	summary := Aggregate(nil, model.DefaultCatalog(), "2024-06-02")

	assert.Zero(t, summary.TodayTotal)
	assert.Zero(t, summary.MonthTotal)
	assert.Zero(t, summary.TodayCount)
	assert.Zero(t, summary.MonthCount)
	assert.Empty(t, summary.CategorySpends)
	assert.Empty(t, summary.Recent)
}

func TestAggregateSingleCategoryMonth(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 100),
		expense("e2", "2024-06-02", "2", 200),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")

	assert.InDelta(t, 200, summary.TodayTotal, 0.001)
	assert.InDelta(t, 300, summary.MonthTotal, 0.001)
	assert.Equal(t, 1, summary.TodayCount)
	assert.Equal(t, 2, summary.MonthCount)

	require.Len(t, summary.CategorySpends, 1)
	cs := summary.CategorySpends[0]
	assert.Equal(t, "2", cs.Category.ID)
	assert.InDelta(t, 300, cs.Amount, 0.001)
	assert.InDelta(t, 100, cs.Percentage, 0.001)
}

func TestAggregateMonthBoundaries(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-30", "1", 50),
		expense("e2", "2024-07-01", "1", 75),
		expense("e3", "2023-06-15", "1", 25),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-15")

	assert.Zero(t, summary.TodayTotal)
	assert.InDelta(t, 50, summary.MonthTotal, 0.001)
	assert.Equal(t, 1, summary.MonthCount)
}

func TestAggregateSortsDescendingByAmount(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "1", 100),
		expense("e2", "2024-06-02", "4", 500),
		expense("e3", "2024-06-03", "6", 250),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-10")

	require.Len(t, summary.CategorySpends, 3)
	assert.Equal(t, "4", summary.CategorySpends[0].Category.ID)
	assert.Equal(t, "6", summary.CategorySpends[1].Category.ID)
	assert.Equal(t, "1", summary.CategorySpends[2].Category.ID)
}

func TestAggregateOmitsZeroSpendCategories(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 100),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-01")

	require.Len(t, summary.CategorySpends, 1)
	assert.Equal(t, "2", summary.CategorySpends[0].Category.ID)
}

func TestAggregateUnknownCategoryCountsTowardTotalOnly(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 100),
		expense("e2", "2024-06-02", "999", 50),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")

	assert.InDelta(t, 150, summary.MonthTotal, 0.001)
	require.Len(t, summary.CategorySpends, 1)
	assert.Equal(t, "2", summary.CategorySpends[0].Category.ID)

	var breakdownTotal float64
	for _, cs := range summary.CategorySpends {
		breakdownTotal += cs.Amount
	}
	assert.Less(t, breakdownTotal, summary.MonthTotal)
}

func TestAggregatePercentagesSumToHundred(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "1", 333),
		expense("e2", "2024-06-02", "2", 333),
		expense("e3", "2024-06-03", "3", 334),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-05")

	var pctSum float64
	for _, cs := range summary.CategorySpends {
		pctSum += cs.Percentage
	}
	assert.InDelta(t, 100, pctSum, 0.01)
}

func TestAggregateRecentFollowsInsertionOrder(t *testing.T) {
	// The store returns newest-first; recent must not reorder by date.
	expenses := []model.Expense{
		expense("e7", "2024-06-01", "1", 7),
		expense("e6", "2024-06-09", "1", 6),
		expense("e5", "2024-06-05", "1", 5),
		expense("e4", "2024-06-03", "1", 4),
		expense("e3", "2024-06-08", "1", 3),
		expense("e2", "2024-06-02", "1", 2),
		expense("e1", "2024-06-04", "1", 1),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-09")

	require.Len(t, summary.Recent, DefaultRecentCount)
	for i, want := range []string{"e7", "e6", "e5", "e4", "e3"} {
		assert.Equal(t, want, summary.Recent[i].ID)
	}
}

func TestAggregateRecentShorterThanBound(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "1", 10),
		expense("e2", "2024-06-02", "2", 20),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")
	assert.Len(t, summary.Recent, 2)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 100),
		expense("e2", "2024-06-02", "4", 50),
	}
	original := append([]model.Expense(nil), expenses...)

	_ = Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")

	assert.Equal(t, original, expenses)
}

func TestAggregateIdempotent(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 100),
		expense("e2", "2024-06-02", "4", 50),
		expense("e3", "2024-06-02", "999", 25),
	}

	first := Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")
	second := Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")

	assert.Equal(t, first, second)
}

func TestAggregateZeroAmounts(t *testing.T) {
	expenses := []model.Expense{
		expense("e1", "2024-06-01", "2", 0),
		expense("e2", "2024-06-02", "4", 0),
	}

	summary := Aggregate(expenses, model.DefaultCatalog(), "2024-06-02")

	assert.Zero(t, summary.MonthTotal)
	assert.Equal(t, 2, summary.MonthCount)
	// Zero month total must not divide; zero-spend categories stay omitted.
	assert.Empty(t, summary.CategorySpends)
}
