package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dabbulu/dabbulu/internal/cli"
	"github.com/dabbulu/dabbulu/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the spending categories",
		Long:  `Display the fixed category catalog. Categories are static reference data.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog := model.DefaultCatalog()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"))

			for _, cat := range catalog.Categories() {
				fmt.Fprintf(w, "%s\t%s\n", cat.ID, cat.Name)
			}

			return nil
		},
	}
}
