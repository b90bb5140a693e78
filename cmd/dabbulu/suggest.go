package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dabbulu/dabbulu/internal/cli"
	"github.com/dabbulu/dabbulu/internal/model"
	"github.com/dabbulu/dabbulu/internal/suggest"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <note...>",
		Short: "Suggest a category for a note",
		Long: `Run a free-text note through the category suggestion engine and print
the category it would pick, if any.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			note := strings.Join(args, " ")

			categoryID, ok := suggest.NewDefaultEngine().Suggest(note)
			if !ok {
				fmt.Println(cli.InfoStyle.Render("No suggestion for that note."))
				return nil
			}

			catalog := model.DefaultCatalog()
			category, found := catalog.ByID(categoryID)
			if !found {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Suggested category id: %s", categoryID)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s (id %s)", category.Name, category.ID)))
			return nil
		},
	}
}
