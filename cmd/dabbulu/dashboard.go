package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dabbulu/dabbulu/internal/cli"
	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/report"
)

func dashboardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's and this month's spending",
		Long: `Show the spending dashboard: today's total, this month's total, the
per-category breakdown, budget alerts, and recent expenses. All views
are recomputed from the stored records on every run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if date == "" {
				date = model.Today(time.Now())
			}
			if !model.ValidDate(date) {
				return fmt.Errorf("%w: %q", model.ErrInvalidDate, date)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := currentUser(ctx, store)
			if err != nil {
				return err
			}

			expenses, err := store.ListExpenses(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}
			budgets, err := store.ListBudgets(ctx, user.ID)
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses yet. Use 'dabbulu expense add' to record your first one."))
				return nil
			}

			catalog := model.DefaultCatalog()
			summary := report.AggregateN(expenses, catalog, date, recentCount())
			alerts := report.Alerts(report.EvaluateBudgets(budgets, summary.CategorySpends, catalog))

			renderDashboard(date, summary, alerts)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func renderDashboard(date string, summary report.Summary, alerts []report.BudgetAlert) {
	symbol := currencySymbol()

	fmt.Println(cli.FormatTitle("Dashboard"))

	if len(alerts) > 0 {
		fmt.Println(cli.WarningStyle.Render(cli.AlertIcon + " Budget alerts"))
		for _, a := range alerts {
			name := a.Category.Name
			if name == "" {
				name = a.Budget.CategoryID
			}
			line := fmt.Sprintf("  %s: %s / %s (%s)",
				name,
				cli.FormatMoney(symbol, a.Spent),
				cli.FormatMoney(symbol, a.Budget.MonthlyLimit),
				cli.FormatPercent(a.Percentage))
			if a.Status == report.StatusOverLimit {
				fmt.Println(cli.ErrorStyle.Render(line))
			} else {
				fmt.Println(cli.WarningStyle.Render(line))
			}
		}
		fmt.Println()
	}

	fmt.Printf("%s %s  (%d transactions)\n",
		cli.BoldStyle.Render("Today:"),
		cli.FormatMoney(symbol, summary.TodayTotal),
		summary.TodayCount)
	fmt.Printf("%s %s  (%d transactions)\n\n",
		cli.BoldStyle.Render(model.MonthName(model.MonthKey(date))+":"),
		cli.FormatMoney(symbol, summary.MonthTotal),
		summary.MonthCount)

	if len(summary.CategorySpends) > 0 {
		fmt.Println(cli.BoldStyle.Render(cli.ChartIcon + " Spending by category"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, cs := range summary.CategorySpends {
			fmt.Fprintf(w, "  %s\t%s\t%s\n",
				cs.Category.Name,
				cli.FormatMoney(symbol, cs.Amount),
				cli.SubtleStyle.Render(cli.FormatPercent(cs.Percentage)))
		}
		w.Flush()
		fmt.Println()
	}

	if len(summary.Recent) > 0 {
		fmt.Println(cli.BoldStyle.Render("Recent expenses"))
		renderExpenseTable(summary.Recent)
	}
}
