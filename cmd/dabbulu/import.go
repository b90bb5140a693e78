package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dabbulu/dabbulu/internal/cli"
	"github.com/dabbulu/dabbulu/internal/importer"
	"github.com/dabbulu/dabbulu/internal/suggest"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import expenses from a CSV file",
		Long: `Import expenses from a CSV file with columns
date,amount,payment_method,category_id,note. The category_id column may
be left empty when the note matches a suggestion keyword. Malformed rows
are skipped, not fatal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := currentUser(ctx, store)
			if err != nil {
				return err
			}

			imp := importer.New(store, suggest.NewDefaultEngine(), os.Stderr)
			result, err := imp.Import(ctx, f, user.ID)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Println()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses (%d suggested, %d skipped)",
				result.Imported, result.Suggested, result.Skipped)))
			return nil
		},
	}
}
