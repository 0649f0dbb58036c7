package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
)

// newShowProjectCmd creates a new command for showing project details
func newShowProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-project [slug]",
		Short: "Show a specific project",
		Long:  `Show detailed information about a project identified by its slug.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := setup(); err != nil {
				return err
			}
			return showProject(cmd.Context(), args[0])
		},
	}
}

// showProject displays details about a specific project
func showProject(ctx context.Context, slug string) error {
	item, err := services.Default().Project(ctx, slug)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", item.Title)
	fmt.Printf("Category: %s\n", item.Category)
	fmt.Printf("Description: %s\n", item.Description)
	fmt.Println("================")

	if item.Client != "" {
		fmt.Printf("Client: %s\n", item.Client)
	}
	if item.Year != "" {
		fmt.Printf("Year: %s\n", item.Year)
	}
	fmt.Printf("Image: %s\n", item.Image)
	if len(item.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(item.Tags, ", "))
	}

	switch s := item.Stats.(type) {
	case models.CompletedStats:
		fmt.Printf("Views: %s, Engagement: %s\n", s.Views, s.Engagement)
	case models.InProgressStats:
		fmt.Printf("Status: %s, Progress: %s\n", s.Status, s.Progress)
	}

	if item.VideoID != "" {
		fmt.Printf("Video: %s (%s)\n", item.VideoID, item.Duration)
	}
	for i, award := range item.Awards {
		fmt.Printf("Award %d: %s\n", i+1, award)
	}
	for i, image := range item.Images {
		fmt.Printf("%d. %s\n", i+1, image)
	}
	if item.CaseStudy != nil {
		fmt.Println("Case study: yes")
	}
	return nil
}
