package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/cards"
	"studio-portfolio/pkg/gallery"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
)

// newListProjectsCmd creates a new command for listing projects
func newListProjectsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list-projects",
		Short: "List all projects",
		Long:  `List all projects in catalog order, optionally restricted to one category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(); err != nil {
				return err
			}
			return listProjects(cmd.Context(), category)
		},
	}
	cmd.Flags().StringVar(&category, "category", models.AllCategories, "Only list projects of this category")
	return cmd
}

// listProjects displays the projects of a category
func listProjects(ctx context.Context, category string) error {
	items, err := services.Default().Projects(ctx)
	if err != nil {
		return err
	}
	items = gallery.Filter(items, category)

	fmt.Println("Projects:")
	fmt.Println("=========")

	for _, item := range items {
		marker := ""
		if item.Featured {
			marker = " *"
		}
		fmt.Printf("- %s%s\n", item.Title, marker)
		fmt.Printf("    Category: %s (%s card)\n", item.Category, cards.VariantFor(item.Category))
		fmt.Printf("    Link: %s\n", cards.DetailHref(item))
	}

	fmt.Println()
	fmt.Printf("Total: %d projects\n", len(items))
	return nil
}
