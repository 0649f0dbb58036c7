package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/services"
)

// newValidateCmd creates a new command for validating the catalog
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the project catalog",
		Long: `Load and validate the project catalog. Structural errors such as duplicate slugs or
missing stats fail the command; data defects such as unknown categories are reported as warnings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(); err != nil {
				return err
			}
			return validateCatalog(cmd.Context())
		},
	}
}

func validateCatalog(ctx context.Context) error {
	c, err := services.Default().Catalog(ctx)
	if err != nil {
		return fmt.Errorf("catalog is invalid: %w", err)
	}

	warnings := c.Warnings()
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	fmt.Printf("OK: %d projects in %d categories, %d warnings\n", c.Len(), len(c.Categories()), len(warnings))
	return nil
}
