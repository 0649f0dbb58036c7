package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all project categories",
		Long:  `List all project categories with the number of projects in each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(); err != nil {
				return err
			}
			return listCategories(cmd.Context())
		},
	}
}

// listCategories displays all categories and their project counts
func listCategories(ctx context.Context) error {
	counts, err := services.Default().CategoryCounts(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Project Categories:")
	fmt.Println("==================")

	total := 0
	for _, c := range counts {
		fmt.Printf("%s (%s)\n", c.Label, c.ID)
		fmt.Printf("  Projects: %d\n", c.Count)
		fmt.Println()
		total += c.Count
	}

	fmt.Printf("Total: %d categories, %d projects\n", len(counts), total)
	return nil
}
