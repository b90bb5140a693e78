// Package report computes derived spending views: daily and monthly
// totals, per-category breakdowns, and budget evaluations. Everything
// here is a pure projection of the record sets passed in; nothing is
// cached or incrementally maintained.
package report

import (
	"sort"

	"github.com/dabbulu/dabbulu/internal/model"
)

// DefaultRecentCount bounds the "recent expenses" list on the dashboard.
const DefaultRecentCount = 5

// CategorySpend is the derived monthly total and share-of-total for one
// category.
type CategorySpend struct {
	Category   model.Category
	Amount     float64
	Percentage float64
}

// Summary holds the aggregated dashboard view for one reference date.
type Summary struct {
	CategorySpends []CategorySpend
	Recent         []model.Expense
	TodayTotal     float64
	MonthTotal     float64
	TodayCount     int
	MonthCount     int
}

// Aggregate computes the summary for referenceDate (YYYY-MM-DD) over the
// given expenses. "Today" is an exact date match; "this month" is a
// YYYY-MM prefix match. The input slice is never mutated and an empty
// input yields zero totals and empty lists.
//
// Expenses referencing a category id absent from the catalog still count
// toward the month total but are excluded from the per-category
// breakdown.
func Aggregate(expenses []model.Expense, catalog model.Catalog, referenceDate string) Summary {
	return AggregateN(expenses, catalog, referenceDate, DefaultRecentCount)
}

// AggregateN is Aggregate with a configurable recent-expense bound.
func AggregateN(expenses []model.Expense, catalog model.Catalog, referenceDate string, recentCount int) Summary {
	monthKey := model.MonthKey(referenceDate)

	summary := Summary{
		CategorySpends: []CategorySpend{},
		Recent:         []model.Expense{},
	}

	byCategory := make(map[string]float64)
	for _, e := range expenses {
		if !model.InMonth(e.Date, monthKey) {
			continue
		}
		summary.MonthTotal += e.Amount
		summary.MonthCount++
		byCategory[e.CategoryID] += e.Amount

		if e.Date == referenceDate {
			summary.TodayTotal += e.Amount
			summary.TodayCount++
		}
	}

	// Walk the catalog in its fixed order so equal amounts keep a
	// stable relative order after the sort.
	for _, cat := range catalog.Categories() {
		amount := byCategory[cat.ID]
		if amount <= 0 {
			continue
		}
		percentage := 0.0
		if summary.MonthTotal > 0 {
			percentage = amount / summary.MonthTotal * 100
		}
		summary.CategorySpends = append(summary.CategorySpends, CategorySpend{
			Category:   cat,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(summary.CategorySpends, func(i, j int) bool {
		return summary.CategorySpends[i].Amount > summary.CategorySpends[j].Amount
	})

	// Recent expenses follow insertion order of the input list, which
	// the store returns newest-first.
	if recentCount > len(expenses) {
		recentCount = len(expenses)
	}
	if recentCount > 0 {
		summary.Recent = append(summary.Recent, expenses[:recentCount]...)
	}

	return summary
}
