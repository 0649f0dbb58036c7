package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/services"
)

// newCheckAssetsCmd creates a new command for checking bucket assets
func newCheckAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-assets",
		Short: "Check that catalog images exist in the bucket",
		Long:  `Scan the configured bucket and report gs:// image references in the catalog that have no matching object.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup()
			if err != nil {
				return err
			}
			return checkAssets(cmd.Context(), cfg)
		},
	}
}

func checkAssets(ctx context.Context, cfg *config.Config) error {
	c, err := services.Default().Catalog(ctx)
	if err != nil {
		return err
	}

	report, err := services.CheckAssets(ctx, cfg.BucketName, c.Items())
	if err != nil {
		return err
	}

	for _, m := range report.Missing {
		fmt.Printf("missing: %s (%s)\n", m.Ref, m.Slug)
	}
	fmt.Printf("Checked %d references in gs://%s, %d missing\n", report.Checked, cfg.BucketName, len(report.Missing))
	if len(report.Missing) > 0 {
		return fmt.Errorf("%d assets missing", len(report.Missing))
	}
	return nil
}
