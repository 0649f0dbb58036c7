package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/catalog"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
)

// newExportCmd creates a new command for exporting the catalog
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export the project catalog",
		Long:  `Export the validated project catalog in the specified format. Supported formats: json, yaml.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported export format %q (supported: json, yaml)", format)
			}
			if _, _, err := setup(); err != nil {
				return err
			}
			return exportData(cmd.Context(), format)
		},
	}
}

type exportDocument struct {
	Categories []models.Category `json:"categories"`
	Projects   []models.Item     `json:"projects"`
}

// exportData writes the catalog to stdout in the specified format
func exportData(ctx context.Context, format string) error {
	c, err := services.Default().Catalog(ctx)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = catalog.Encode(c)
	default:
		data, err = json.MarshalIndent(exportDocument{Categories: c.Categories(), Projects: c.Items()}, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("error marshaling catalog: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
