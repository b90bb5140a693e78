package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dabbulu/dabbulu/internal/cli"
	"github.com/dabbulu/dabbulu/internal/common"
	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/report"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
		Long:  `Set per-category monthly limits and review spend against them.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(budgetAlertsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category-id> <monthly-limit>",
		Short: "Set a category's monthly limit",
		Long: `Set the monthly spending limit for a category. Setting a limit for
a category that already has one updates it in place.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catalog := model.DefaultCatalog()
			category, ok := catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("%w: %q (see 'dabbulu categories')", common.ErrUnknownCategory, args[0])
			}

			limit, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid monthly limit %q: %w", args[1], err)
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

			budget, err := store.UpsertBudget(ctx, user.ID, category.ID, limit)
			if err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s/month",
				category.Name, cli.FormatMoney(currencySymbol(), budget.MonthlyLimit))))
			return nil
		},
	}
}

func listBudgetsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all budgets with current spend",
		Long:  `Show every configured budget against this month's spend, including the ones under limit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBudgetView(cmd, date, false)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func budgetAlertsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Show only near-limit and over-limit budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBudgetView(cmd, date, true)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func runBudgetView(cmd *cobra.Command, date string, alertsOnly bool) error {
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

	catalog := model.DefaultCatalog()
	summary := report.AggregateN(expenses, catalog, date, recentCount())
	evaluated := report.EvaluateBudgets(budgets, summary.CategorySpends, catalog)

	if alertsOnly {
		evaluated = report.Alerts(evaluated)
		if len(evaluated) == 0 {
			fmt.Println(cli.FormatSuccess("All budgets are within limits."))
			return nil
		}
	} else if len(evaluated) == 0 {
		fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'dabbulu budget set' to create one."))
		return nil
	}

	renderBudgetTable(evaluated)
	return nil
}

func renderBudgetTable(alerts []report.BudgetAlert) {
	symbol := currencySymbol()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Limit"),
		cli.HeaderStyle.Render("Spent"),
		cli.HeaderStyle.Render("Used"),
		cli.HeaderStyle.Render("Remaining"),
		cli.HeaderStyle.Render("Status"))

	for _, a := range alerts {
		name := a.Category.Name
		if name == "" {
			name = a.Budget.CategoryID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			cli.FormatMoney(symbol, a.Budget.MonthlyLimit),
			cli.FormatMoney(symbol, a.Spent),
			cli.FormatPercent(a.Percentage),
			cli.FormatMoney(symbol, a.Remaining),
			renderStatus(a.Status))
	}
}

func renderStatus(status report.BudgetStatus) string {
	switch status {
	case report.StatusOverLimit:
		return cli.ErrorStyle.Render("over limit")
	case report.StatusNearLimit:
		return cli.WarningStyle.Render("near limit")
	default:
		return cli.SuccessStyle.Render("ok")
	}
}
