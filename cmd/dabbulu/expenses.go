package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dabbulu/dabbulu/internal/cli"
	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/suggest"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
		Long:  `Add, list, edit, and delete expense records.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(editExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amount     float64
		date       string
		method     string
		categoryID string
		note       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense. When --category is omitted, the note is run
through the category suggestion engine; if a keyword matches, the
suggested category is used.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := currentUser(ctx, store)
			if err != nil {
				return err
			}

			paymentMethod, err := model.ParsePaymentMethod(method)
			if err != nil {
				return err
			}

			if categoryID == "" {
				suggested, ok := suggest.NewDefaultEngine().Suggest(note)
				if !ok {
					return fmt.Errorf("no category given and the note suggests none; pass --category (see 'dabbulu categories')")
				}
				categoryID = suggested
				catalog := model.DefaultCatalog()
				if cat, found := catalog.ByID(categoryID); found {
					fmt.Println(cli.FormatInfo(fmt.Sprintf("Suggested category: %s", cat.Name)))
				}
			}

			expense := &model.Expense{
				ID:            uuid.NewString(),
				UserID:        user.ID,
				Date:          date,
				Amount:        amount,
				PaymentMethod: paymentMethod,
				CategoryID:    categoryID,
				Note:          note,
				CreatedAt:     time.Now(),
			}
			if err := expense.Validate(); err != nil {
				return err
			}

			if err := store.AddExpense(ctx, expense); err != nil {
				return fmt.Errorf("failed to record expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s on %s",
				cli.FormatMoney(currencySymbol(), expense.Amount), expense.Date)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount (required)")
	cmd.Flags().StringVar(&date, "date", model.Today(time.Now()), "calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&method, "method", string(model.PaymentUPI), "payment method (UPI, Wallet, Cash, Card)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id (omit to use the note suggestion)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long:  `List expenses, newest first. Use --month to restrict to one YYYY-MM month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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

			if month != "" {
				filtered := expenses[:0:0]
				for _, e := range expenses {
					if model.InMonth(e.Date, month) {
						filtered = append(filtered, e)
					}
				}
				expenses = filtered
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses yet. Use 'dabbulu expense add' to record one."))
				return nil
			}

			renderExpenseTable(expenses)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "restrict to a month (YYYY-MM)")

	return cmd
}

func editExpenseCmd() *cobra.Command {
	var (
		amount     float64
		date       string
		method     string
		categoryID string
		note       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an expense",
		Long:  `Update individual fields of an expense. Only the flags you pass change.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expense, err := store.GetExpenseByID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load expense: %w", err)
			}
			if expense == nil {
				return fmt.Errorf("expense %q not found", args[0])
			}

			if cmd.Flags().Changed("amount") {
				expense.Amount = amount
			}
			if cmd.Flags().Changed("date") {
				expense.Date = date
			}
			if cmd.Flags().Changed("method") {
				parsed, err := model.ParsePaymentMethod(method)
				if err != nil {
					return err
				}
				expense.PaymentMethod = parsed
			}
			if cmd.Flags().Changed("category") {
				expense.CategoryID = categoryID
			}
			if cmd.Flags().Changed("note") {
				expense.Note = note
			}

			if err := expense.Validate(); err != nil {
				return err
			}

			if err := store.UpdateExpense(ctx, expense); err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense %s", expense.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&date, "date", "", "new calendar date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&method, "method", "", "new payment method")
	cmd.Flags().StringVar(&categoryID, "category", "", "new category id")
	cmd.Flags().StringVar(&note, "note", "", "new note")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long:  `Remove an expense record. Deleting an unknown id is a no-op.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteExpense(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %s", args[0])))
			return nil
		},
	}
}

func renderExpenseTable(expenses []model.Expense) {
	catalog := model.DefaultCatalog()
	symbol := currencySymbol()
	now := time.Now()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Method"),
		cli.HeaderStyle.Render("Note"))

	for _, e := range expenses {
		categoryName := e.CategoryID
		if cat, ok := catalog.ByID(e.CategoryID); ok {
			categoryName = cat.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			model.FormatDay(e.Date, now),
			cli.FormatMoney(symbol, e.Amount),
			categoryName,
			e.PaymentMethod,
			e.Note)
	}
}
